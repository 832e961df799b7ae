package huffman

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched (via errors.Is) by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyQueue is returned by Queue.ExtractMin when the queue holds no
// entries.  Seeing it from Build means the builder itself is broken.
var ErrEmptyQueue = errors.New("extract from empty queue")

// ErrUnknownSymbol is returned by Codebook.Write for a Symbol that has no
// assigned Code.
var ErrUnknownSymbol = errors.New("symbol has no code")

// InvalidInputError reports why the arguments to Build were rejected.
type InvalidInputError struct {
	// Index is the offending position in the input, or -1 if the problem
	// is not tied to a single position.
	Index int

	// Reason is a human-readable description of the problem.
	Reason string
}

// Error fulfills the error interface.
func (err *InvalidInputError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("invalid input: %s", err.Reason)
	}
	return fmt.Sprintf("invalid input at index %d: %s", err.Index, err.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) succeed.
func (err *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

var _ error = (*InvalidInputError)(nil)

func invalidInput(index int, format string, args ...interface{}) error {
	return &InvalidInputError{Index: index, Reason: fmt.Sprintf(format, args...)}
}
