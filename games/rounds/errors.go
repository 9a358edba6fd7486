/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds

// RoundError is a sentinel error raised by the round manager.
type RoundError string

func (e RoundError) Error() string {
	return string(e)
}

const (
	// User flow mistakes, reported through Display.Notify.
	ErrNoActiveRound RoundError = "no active round, press start to get a word"
	ErrEmptyCanvas   RoundError = "the canvas is empty, draw something first"

	ErrNilConfig     RoundError = "config cannot be nil"
	ErrNilCanvas     RoundError = "canvas cannot be nil"
	ErrNilDisplay    RoundError = "display cannot be nil"
	ErrEmptyPool     RoundError = "word pool cannot be empty"
	ErrEmptyWord     RoundError = "word cannot be empty"
	ErrDuplicateWord RoundError = "word appears more than once in the pool"
)
