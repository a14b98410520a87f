package survey

import "errors"

var (
	// ErrTooManyAttempts is returned when a prompt receives only invalid answers.
	ErrTooManyAttempts = errors.New("too many invalid answers")
	// ErrReadInput is returned when the answer source fails for a reason other than end of input.
	ErrReadInput = errors.New("unable to read input")
	// ErrUnknownRoom is returned when a requested room is not defined.
	ErrUnknownRoom = errors.New("unknown room")
)
