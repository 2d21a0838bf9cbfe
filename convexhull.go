// A planar convex hull package for Go.
//
// This package computes the convex hull of a set of 2D points with the Jarvis
// march (gift wrapping) algorithm, and answers geometric queries on it:
// containment, area, centroid, closest point, and the equivalent halfspace
// representation A x ≤ b.
//
// The advanced package exposes the in-place and allocation free variants, and
// the unchecked constructor for trusted vertex data.
package convexhull

import "github.com/osuushi/convexhull/advanced"

type Point = advanced.Point
type ConvexHull = advanced.ConvexHull
type VertexOrder = advanced.VertexOrder

const (
	CCW = advanced.CCW
	CW  = advanced.CW
)

var (
	ErrNotConvex    = advanced.ErrNotConvex
	ErrDegenerate   = advanced.ErrDegenerate
	ErrEmptyHull    = advanced.ErrEmptyHull
	ErrSizeMismatch = advanced.ErrSizeMismatch
	ErrNonFinite    = advanced.ErrNonFinite
	ErrNumerical    = advanced.ErrNumerical
)

// Compute the convex hull of points, with vertices in counterclockwise order.
//
// The points may be in any order and may contain duplicates. The result holds
// only the extreme points: interior points and points in the middle of an edge
// are dropped. Fewer than three extreme points give a degenerate hull (empty,
// a single point, or a segment).
func Compute(points ...Point) (result *ConvexHull, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.JarvisMarch(points), nil
}

// Compute the convex hull of points into hull, reusing its storage. The hull's
// order is kept. See advanced.JarvisMarchInto for fixed-capacity hulls.
func ComputeInto(hull *ConvexHull, points ...Point) (err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return advanced.JarvisMarchInto(hull, points)
}

// Like Compute, but with vertices in clockwise order.
func ComputeCW(points ...Point) (*ConvexHull, error) {
	hull, err := Compute(points...)
	if err != nil {
		return nil, err
	}
	return hull.Reversed(), nil
}

// Create a hull from vertices that are already ordered and strongly convex in
// the given order. Returns ErrNotConvex otherwise.
func New(order VertexOrder, vertices ...Point) (*ConvexHull, error) {
	return advanced.NewConvexHull(order, vertices)
}

// Return whether vertices are ordered according to order, and as a result
// strongly convex.
func IsOrderedAndStronglyConvex(vertices []Point, order VertexOrder) bool {
	return advanced.IsOrderedAndStronglyConvex(vertices, order)
}
