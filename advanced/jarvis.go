package advanced

import "github.com/pkg/errors"

// Gift wrapping (Jarvis march). Starting from the lexicographically lowest
// point, which is always a hull vertex, repeatedly pick the next vertex as the
// point that leaves no other point strictly to the right of the edge leading to
// it. When several candidates are collinear with the current vertex, the
// farthest wins, so vertices in the middle of an edge are never recorded. The
// walk stops when it returns to the start.
//
// This runs in O(nh) time, where n is the number of points and h is the number
// of hull vertices.

// Compute the convex hull of points in counterclockwise order. The points may
// be in any order and may contain duplicates.
//
// Panics with a HullError if a point is not finite, or if the walk fails to
// close. The root package converts these into errors.
func JarvisMarch(points []Point) *ConvexHull {
	hull := NewEmptyConvexHull(CCW, 0)
	if err := JarvisMarchInto(hull, points); err != nil {
		// Growable hulls never report a size mismatch, so this is ErrNonFinite
		fatalf(err, "jarvis march")
	}
	return hull
}

// Compute the convex hull of points and store the result in hull, overwriting
// its vertices. The hull's storage is reused when it is large enough, and the
// vertex count is set to exactly the number of hull vertices. A hull with CW
// order receives the counterclockwise result reversed.
//
// For a fixed hull, the result is counted first, and if it does not fit,
// ErrSizeMismatch is returned and the hull is left untouched. A point that is
// not finite returns ErrNonFinite, also leaving the hull untouched.
//
// points may share memory with the hull's storage, for example when a hull is
// recomputed from its own Vertices. The points are then copied before the hull
// is written.
//
// Panics with a HullError if the walk fails to close.
func JarvisMarchInto(hull *ConvexHull, points []Point) error {
	for _, p := range points {
		if !isFinite(p) {
			return errors.Wrapf(ErrNonFinite, "cannot compute hull of point %v", p)
		}
	}

	if hull.fixed {
		count := march(points, nil)
		if count > cap(hull.vertices) {
			return errors.Wrapf(ErrSizeMismatch, "hull has %d vertices but storage holds %d", count, cap(hull.vertices))
		}
	}

	// A walk that fails to close leaves an empty hull behind, never a partial one
	defer func() {
		if r := recover(); r != nil {
			hull.vertices = hull.vertices[:0]
			panic(r)
		}
	}()

	if overlaps(hull.vertices, points) {
		points = append([]Point(nil), points...)
	}

	vertices := hull.vertices[:0]
	march(points, func(p Point) {
		vertices = append(vertices, p)
	})
	if hull.order == CW {
		reverse(vertices)
	}
	hull.vertices = vertices
	return nil
}

// Walk the hull of points counterclockwise, calling visit (if not nil) on each
// vertex in order. Returns the number of vertices.
func march(points []Point, visit func(Point)) int {
	if len(points) == 0 {
		return 0
	}

	start := points[0]
	for _, p := range points[1:] {
		if lexLess(p, start) {
			start = p
		}
	}

	count := 0
	current := start
	// A correct walk visits each point at most once, plus the return to start
	for steps := 0; ; steps++ {
		if steps > len(points) {
			fatalf(ErrNumerical, "no return to start vertex %v after %d steps", start, steps)
		}

		count++
		if visit != nil {
			visit(current)
		}

		next, ok := nextVertex(points, current)
		if !ok || next == start {
			break
		}
		current = next
	}
	return count
}

// Find the vertex following current in counterclockwise order. Returns false
// if every point equals current.
func nextVertex(points []Point, current Point) (Point, bool) {
	var candidate Point
	found := false
	for _, p := range points {
		if p == current {
			continue
		}
		if !found {
			candidate = p
			found = true
			continue
		}

		turn := cross3(current, candidate, p)
		if turn < 0 {
			// p is to the right of current->candidate, so candidate is not on the hull
			candidate = p
		} else if turn == 0 && current.DistanceSquaredTo(p) > current.DistanceSquaredTo(candidate) {
			candidate = p
		}
	}
	return candidate, found
}

// Whether writing anywhere in the capacity of storage could change an element
// of points.
func overlaps(storage, points []Point) bool {
	storage = storage[:cap(storage)]
	if len(storage) == 0 || len(points) == 0 {
		return false
	}
	// Two views of the same array overlap iff one starts inside the other
	for i := range storage {
		if &storage[i] == &points[0] {
			return true
		}
	}
	for i := range points {
		if &points[i] == &storage[0] {
			return true
		}
	}
	return false
}

func reverse(points []Point) {
	for left, right := 0, len(points)-1; left < right; left, right = left+1, right-1 {
		points[left], points[right] = points[right], points[left]
	}
}
