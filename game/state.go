package game

import "github.com/pkg/errors"

// GameState owns a board, the side to move and the game-over flag. It only
// changes through ApplyMove and Pass.
type GameState struct {
	board   Board
	turn    Side
	over    bool
	tracked bool // record history; off for search snapshots
	history []Ply
}

// NewGameState starts a game from the standard opening with Dark to move.
func NewGameState() *GameState {
	return NewGameStateFrom(NewBoard(), Dark)
}

// NewGameStateFrom starts a game from an arbitrary position. The side to move
// is kept as given even when it has no legal move; see MustPass.
func NewGameStateFrom(board Board, turn Side) *GameState {
	return &GameState{
		board:   board,
		turn:    turn,
		over:    IsTerminal(&board),
		tracked: true,
	}
}

// Board returns a copy of the current board.
func (gs *GameState) Board() Board {
	return gs.board
}

// Turn returns the side to move.
func (gs *GameState) Turn() Side {
	return gs.turn
}

func (gs *GameState) IsGameOver() bool {
	return gs.over
}

// LegalMoves returns the legal moves of the side to move in row-major order.
func (gs *GameState) LegalMoves() []Move {
	if gs.over {
		return nil
	}
	return LegalMoves(&gs.board, gs.turn)
}

// MustPass reports whether the side to move has no legal move while the game
// is still in progress.
func (gs *GameState) MustPass() bool {
	return !gs.over && !HasAnyLegalMove(&gs.board, gs.turn)
}

// ApplyMove plays move for the side to move. Afterwards the turn goes to the
// opponent, or straight back to the mover when the opponent must pass, or the
// game ends when neither side can move. A rejected move changes nothing.
func (gs *GameState) ApplyMove(move Move) error {
	if gs.over {
		return errors.Wrapf(ErrGameAlreadyOver, "move %s", move)
	}
	if move.Side != gs.turn {
		return errors.Wrapf(ErrIllegalMove, "%s: %s is to move", move, gs.turn)
	}
	flipped, err := ApplyMove(&gs.board, move)
	if err != nil {
		return err
	}
	gs.record(Ply{Side: move.Side, Move: move, Flipped: flipped})
	gs.advance()
	return nil
}

// Pass forfeits the turn of a side that has no legal move.
func (gs *GameState) Pass() error {
	if gs.over {
		return errors.Wrap(ErrGameAlreadyOver, "pass")
	}
	if HasAnyLegalMove(&gs.board, gs.turn) {
		return errors.Wrapf(ErrIllegalPass, "%s", gs.turn)
	}
	gs.record(Ply{Side: gs.turn, Pass: true})
	gs.turn = gs.turn.Opponent()
	gs.over = !HasAnyLegalMove(&gs.board, gs.turn)
	return nil
}

func (gs *GameState) advance() {
	next := gs.turn.Opponent()
	switch {
	case HasAnyLegalMove(&gs.board, next):
		gs.turn = next
	case HasAnyLegalMove(&gs.board, gs.turn):
		gs.record(Ply{Side: next, Pass: true})
	default:
		gs.turn = next
		gs.over = true
	}
}

func (gs *GameState) record(p Ply) {
	if gs.tracked {
		gs.history = append(gs.history, p)
	}
}

// Result returns the final score of a finished game.
func (gs *GameState) Result() (Result, error) {
	if !gs.over {
		return Result{}, ErrGameNotOver
	}
	return ResultOf(&gs.board), nil
}

// History returns the plies played so far, forced passes included.
func (gs *GameState) History() []Ply {
	out := make([]Ply, len(gs.history))
	copy(out, gs.history)
	return out
}

// Copy returns a deep copy, history included.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.history = make([]Ply, len(gs.history))
	copy(c.history, gs.history)
	return &c
}

// Snapshot returns a detached copy without history for hypothetical play.
func (gs *GameState) Snapshot() *GameState {
	return &GameState{board: gs.board, turn: gs.turn, over: gs.over}
}

// Play returns a snapshot with move applied; the receiver is not modified.
func (gs *GameState) Play(move Move) (*GameState, error) {
	next := gs.Snapshot()
	if err := next.ApplyMove(move); err != nil {
		return nil, err
	}
	return next, nil
}
