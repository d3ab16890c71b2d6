package blackjack

import "errors"

var (
	ErrRoundInProgress   = errors.New("round already in progress")
	ErrNoBet             = errors.New("no bet placed")
	ErrIllegalAction     = errors.New("action not legal for the active hand")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrGameOver          = errors.New("session over: out of chips")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }
