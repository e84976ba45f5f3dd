package metrics

import (
	"time"
)

// SearchMetric describes the work done by one search.
type SearchMetric struct {
	Depth     int
	AlphaBeta bool
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Cutoffs   int
}

type MoveMetric struct {
	Step int
	Side string
	Move string
	SearchMetric
}

type GameMetric struct {
	StartingSide string
	Winner       string // "Dark", "Light" or "Draw"
	DarkDiscs    int
	LightDiscs   int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Passes       int
}

// Collector accumulates the counters of a single search. It is not safe for
// concurrent use; each searcher owns its collector.
type Collector interface {
	Start(depth int, alphaBeta bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	alphaBeta bool
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, alphaBeta bool) {
	*m = collector{depth: depth, alphaBeta: alphaBeta, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		AlphaBeta: m.alphaBeta,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, alphaBeta bool) {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) Complete() SearchMetric          { return SearchMetric{} }
