package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrInvalidMove       = errors.New("invalid move")
	ErrMalformedInput    = errors.New("malformed input")
	ErrInputClosed       = errors.New("input closed")
	ErrContractViolation = errors.New("move source contract violation")
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrTooFewPlayers     = errors.New("too few players")
	ErrTooManyPlayers    = errors.New("too many players")
	ErrDuplicateSymbol   = errors.New("symbol is already taken")
	ErrNotFound          = errors.New("not found")
)
