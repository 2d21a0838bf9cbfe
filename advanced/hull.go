package advanced

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConvexHull represents the convex hull of a set of 2D points by its extreme
// points (vertices), stored according to its VertexOrder.
//
// The vertices are always ordered and strongly convex: walking them in order
// traces a simple polygon whose every turn has the orientation of the order,
// and no three consecutive vertices are collinear. Hulls with zero, one or two
// vertices (empty set, single point, segment) are valid degenerate cases.
//
// Queries never modify a hull, so a hull can be read from multiple goroutines.
// JarvisMarchInto overwrites it, and must not run concurrently with anything
// else using the same hull.
type ConvexHull struct {
	order    VertexOrder
	vertices []Point
	// Fixed hulls never grow their storage.
	fixed bool
}

// Create a hull from vertices which must already be ordered and strongly
// convex for order. The vertices are copied. Returns ErrNotConvex if the
// invariant does not hold.
func NewConvexHull(order VertexOrder, vertices []Point) (*ConvexHull, error) {
	if !IsOrderedAndStronglyConvex(vertices, order) {
		return nil, errors.Wrapf(ErrNotConvex, "%d vertices in %s order", len(vertices), order)
	}
	return &ConvexHull{
		order:    order,
		vertices: append([]Point(nil), vertices...),
	}, nil
}

// Create a hull from trusted vertices without validating them. The hull takes
// ownership of the slice.
//
// The caller asserts that the vertices are ordered and strongly convex. If they
// are not, queries do not crash, but their results are undefined. When built
// with the hulldebug tag, the invariant is checked and a violation panics.
func NewConvexHullUnchecked(order VertexOrder, vertices []Point) *ConvexHull {
	if debugChecks && !IsOrderedAndStronglyConvex(vertices, order) {
		panic(errors.Wrapf(ErrNotConvex, "unchecked hull with %d vertices in %s order", len(vertices), order))
	}
	return &ConvexHull{order: order, vertices: vertices}
}

// Create an empty hull with room for capacity vertices. Its storage grows as
// needed when it is recomputed with JarvisMarchInto.
func NewEmptyConvexHull(order VertexOrder, capacity int) *ConvexHull {
	return &ConvexHull{order: order, vertices: make([]Point, 0, capacity)}
}

// Create an empty hull backed by storage. The hull never allocates: computing
// a hull with more than len(storage) vertices into it fails with
// ErrSizeMismatch.
func NewFixedConvexHull(order VertexOrder, storage []Point) *ConvexHull {
	return &ConvexHull{order: order, vertices: storage[:0:len(storage)], fixed: true}
}

func (hull *ConvexHull) Order() VertexOrder {
	return hull.order
}

// The ordered vertices. The slice is shared with the hull and must not be
// modified.
func (hull *ConvexHull) Vertices() []Point {
	return hull.vertices
}

func (hull *ConvexHull) NumVertices() int {
	return len(hull.vertices)
}

// Number of vertices the hull's storage holds without reallocating.
func (hull *ConvexHull) Capacity() int {
	return cap(hull.vertices)
}

func (hull *ConvexHull) IsFixed() bool {
	return hull.fixed
}

// The same polygon with its vertices in the opposite order. The result has its
// own growable storage.
func (hull *ConvexHull) Reversed() *ConvexHull {
	n := len(hull.vertices)
	vertices := make([]Point, n)
	for i, v := range hull.vertices {
		vertices[n-1-i] = v
	}
	return &ConvexHull{order: hull.order.Opposite(), vertices: vertices}
}

// Edge i runs from vertex i to vertex i+1, wrapping around at the end. The
// hull must not be empty.
func (hull *ConvexHull) Edge(i int) Segment {
	n := len(hull.vertices)
	return Segment{hull.vertices[CircularIndex(i, n)], hull.vertices[CircularIndex(i+1, n)]}
}

func (hull *ConvexHull) String() string {
	parts := make([]string, len(hull.vertices))
	for i, v := range hull.vertices {
		parts[i] = fmt.Sprintf("(%g, %g)", v.X, v.Y)
	}
	return fmt.Sprintf("ConvexHull{%s: %s}", hull.order, strings.Join(parts, " "))
}

// Return whether vertices are ordered according to order, and as a result
// strongly convex.
//
// Every pair of cyclically adjacent vertices must differ. For three or more
// vertices, every consecutive triple must turn strictly in the direction of
// order (collinear triples fail), and the polygon must wind around exactly
// once, which rules out star shapes whose local turns all agree.
func IsOrderedAndStronglyConvex(vertices []Point, order VertexOrder) bool {
	n := len(vertices)
	switch n {
	case 0, 1:
		return true
	case 2:
		return vertices[0] != vertices[1]
	}

	sign := order.Sign()
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[CircularIndex(i+1, n)]
		c := vertices[CircularIndex(i+2, n)]
		if a == b {
			return false
		}
		if sign*cross3(a, b, c) <= 0 {
			return false
		}
	}

	// Locally convex everywhere. It is also simple iff the other vertices sweep
	// around the first one monotonically.
	for i := 1; i < n-1; i++ {
		if sign*cross3(vertices[0], vertices[i], vertices[i+1]) <= 0 {
			return false
		}
	}
	return true
}
