package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Return whether p is inside hull. Points on the boundary are inside.
//
// An empty hull contains nothing, a single vertex hull contains only that exact
// point, and a two vertex hull contains the points exactly on its segment.
// Otherwise, p must not be strictly outside of any edge. O(h).
func (hull *ConvexHull) Contains(p Point) bool {
	n := len(hull.vertices)
	switch n {
	case 0:
		return false
	case 1:
		return p == hull.vertices[0]
	case 2:
		return Segment{hull.vertices[0], hull.vertices[1]}.Contains(p)
	}

	sign := hull.order.Sign()
	for i, v := range hull.vertices {
		next := hull.vertices[CircularIndex(i+1, n)]
		if sign*cross3(v, next, p) < 0 {
			return false
		}
	}
	return true
}

// Twice the signed area of the polygon, positive for counterclockwise
// vertices. Coordinates are taken relative to the first vertex, which avoids
// cancellation for hulls far from the origin.
func (hull *ConvexHull) doubleSignedArea() float64 {
	n := len(hull.vertices)
	if n < 3 {
		return 0
	}
	origin := hull.vertices[0]
	var sum float64
	for i := 1; i < n-1; i++ {
		sum += cross(hull.vertices[i].Sub(origin), hull.vertices[i+1].Sub(origin))
	}
	return sum
}

// Compute the area of the hull using the shoelace formula. Degenerate hulls
// have zero area. The result does not depend on the vertex order.
func (hull *ConvexHull) Area() float64 {
	return math.Abs(hull.doubleSignedArea()) / 2
}

// Compute the centroid (geometric center) of the region enclosed by the hull.
//
// Returns ErrDegenerate if the hull has fewer than three vertices or encloses
// no area, since the centroid is not well defined there.
func (hull *ConvexHull) Centroid() (Point, error) {
	n := len(hull.vertices)
	if n < 3 {
		return Point{}, errors.Wrapf(ErrDegenerate, "centroid of hull with %d vertices", n)
	}

	// Shoelace terms relative to the first vertex. Terms for the two edges
	// touching the origin vertex vanish.
	origin := hull.vertices[0]
	var doubleArea, cx, cy float64
	for i := 1; i < n-1; i++ {
		a := hull.vertices[i].Sub(origin)
		b := hull.vertices[i+1].Sub(origin)
		c := cross(a, b)
		doubleArea += c
		cx += (a.X + b.X) * c
		cy += (a.Y + b.Y) * c
	}
	if doubleArea == 0 {
		return Point{}, errors.Wrap(ErrDegenerate, "centroid of hull with zero area")
	}

	// Signed area A = doubleArea/2, and the centroid is the sum divided by 6A
	scale := 1 / (3 * doubleArea)
	return origin.Add(Point{X: cx * scale, Y: cy * scale}), nil
}

// Find the closest point to p within hull. If p is inside hull, p itself is
// returned. Otherwise the result is on the boundary, found by projecting p onto
// every edge. Returns ErrEmptyHull for an empty hull.
func (hull *ConvexHull) ClosestPoint(p Point) (Point, error) {
	n := len(hull.vertices)
	switch n {
	case 0:
		return Point{}, errors.Wrapf(ErrEmptyHull, "closest point to %v", p)
	case 1:
		return hull.vertices[0], nil
	case 2:
		return Segment{hull.vertices[0], hull.vertices[1]}.ClosestPoint(p), nil
	}

	if hull.Contains(p) {
		return p, nil
	}

	best := hull.vertices[0]
	bestDistance := math.Inf(1)
	for i := 0; i < n; i++ {
		q := hull.Edge(i).ClosestPoint(p)
		// Strictly less, so ties keep the earlier edge. Ties only happen at a
		// shared vertex, which both edges report identically.
		if d := p.DistanceSquaredTo(q); d < bestDistance {
			best = q
			bestDistance = d
		}
	}
	return best, nil
}

// Euclidean distance from p to the hull, which is zero for points inside it.
func (hull *ConvexHull) DistanceTo(p Point) (float64, error) {
	q, err := hull.ClosestPoint(p)
	if err != nil {
		return 0, err
	}
	if q == p {
		return 0, nil
	}
	return p.DistanceTo(q), nil
}
