package game

import "errors"

var (
	ErrInvalidCombo       = errors.New("invalid combo")
	ErrQueenUncovered     = errors.New("a Queen must be covered by a card of the same suit")
	ErrIllegalPhase       = errors.New("not allowed in this phase of the game")
	ErrIllegalPass        = errors.New("cannot pass while a card can be played or a penalty is owed")
	ErrUnknownIntent      = errors.New("unknown intent")
	ErrInvariantViolation = errors.New("card invariant violated")
	ErrWrongSeatCount     = errors.New("a game needs exactly 4 seats")
)
