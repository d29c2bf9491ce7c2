package internal

import "github.com/pkg/errors"

var (
	// Three collinear or coincident points. The circumradius does not exist, and
	// a NaN radius would poison the heap ordering.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	// A neighbor search went all the way around the ring without finding an
	// active point.
	ErrRingExhausted = errors.New("ring exhausted")
	// Peek or extract on an empty heap. The reducer always checks first, so this
	// is a logic error.
	ErrEmptyHeap = errors.New("empty heap")
	// The point source is missing or unreadable.
	ErrInputUnavailable = errors.New("input unavailable")
	// An edge is longer than 2α, so no circle of radius α passes through both
	// of its endpoints.
	ErrRadiusTooSmall = errors.New("alpha radius too small for edge")
	// α must be positive and finite.
	ErrInvalidAlpha = errors.New("invalid alpha")
)

// Threading errors through every step of the reduction loop would bury the
// algorithm. Instead, the reducer panics with a HullError, and the public API
// recovers to convert it back to an error.
type HullError struct {
	error
}

func (e HullError) Unwrap() error {
	return e.error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Panic with a HullError wrapping err, if there is one.
func check(err error) {
	if err != nil {
		panic(HullError{err})
	}
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
