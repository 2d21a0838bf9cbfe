//go:build !hulldebug

package advanced

// Build with -tags hulldebug to assert the hull invariant in
// NewConvexHullUnchecked.
const debugChecks = false
