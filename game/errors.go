package game

import "github.com/pkg/errors"

var (
	ErrOutOfRange      = errors.New("coordinate out of range")
	ErrIllegalMove     = errors.New("illegal move")
	ErrIllegalPass     = errors.New("pass not allowed while a legal move exists")
	ErrGameAlreadyOver = errors.New("game already over")
	ErrGameNotOver     = errors.New("game not over")
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidBoard    = errors.New("invalid board")
)
