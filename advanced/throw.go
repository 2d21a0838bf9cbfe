package advanced

import "github.com/pkg/errors"

var (
	// The vertex sequence handed to NewConvexHull is not ordered and strongly
	// convex for the requested VertexOrder.
	ErrNotConvex = errors.New("vertices are not ordered and strongly convex")
	// The operation needs at least three vertices enclosing a nonzero area.
	ErrDegenerate = errors.New("degenerate convex hull")
	ErrEmptyHull  = errors.New("empty convex hull")
	// Caller provided output storage does not match the required shape.
	ErrSizeMismatch = errors.New("output size mismatch")
	ErrNonFinite    = errors.New("non-finite point")
	// The gift wrapping walk did not return to its starting vertex.
	ErrNumerical = errors.New("convex hull construction failed to close")
)

// Deep inside the march, threading errors through every step would clutter
// the code for conditions that only arise from broken floating point input.
// Instead, we panic with a HullError, and the public API recovers to convert
// to an error.

// This is a concrete type rather than an error interface alias so that runtime
// panics, which are also errors, are never mistaken for it.
type HullError struct {
	err error
}

func (e HullError) Error() string { return e.err.Error() }
func (e HullError) Unwrap() error { return e.err }
func (e HullError) Cause() error  { return e.err }

// Panic with a HullError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(HullError{errors.Wrapf(cause, format, args...)})
}

// Convert a recovered HullError back into an error. Any other panic is
// re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
