// Package errs defines the failure categories shared by the colorcue packages.
//
// Each package declares its own sentinel errors and wraps one of the
// categories below, so callers can match either the precise failure or its
// category with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers malformed colours, tuples, modes and word lists.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStructure covers word tuples with zero or two descriptor words.
	ErrStructure = errors.New("invalid tuple structure")

	// ErrLookup covers database lookups that produced no word.
	ErrLookup = errors.New("lookup failed")

	// ErrIO covers read, write and open failures.
	ErrIO = errors.New("i/o failure")

	// ErrSetup covers operations attempted before required initialisation.
	ErrSetup = errors.New("not set up")
)

// ioError keeps both ErrIO and the underlying cause reachable by errors.Is.
type ioError struct {
	op  string
	err error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *ioError) Unwrap() []error {
	return []error{ErrIO, e.err}
}

// IO wraps err as an I/O failure of the named operation.
// It returns nil when err is nil.
func IO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ioError{op: op, err: err}
}

// Category returns the category err belongs to, or nil if none matches.
func Category(err error) error {
	for _, category := range []error{ErrInvalidInput, ErrStructure, ErrLookup, ErrIO, ErrSetup} {
		if errors.Is(err, category) {
			return category
		}
	}
	return nil
}
