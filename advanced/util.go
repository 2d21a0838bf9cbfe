package advanced

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// 2D cross product (the z component of the 3D cross product)
func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Cross product of OA and OB. Positive when o, a, b make a left turn.
func cross3(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Lexicographic "less than", X first. The minimum point by this ordering is
// always a hull vertex.
func lexLess(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Closest point on the closed segment to p, by clamped projection.
func (s Segment) ClosestPoint(p Point) Point {
	d := s.End.Sub(s.Start)
	lenSquared := dot(d, d)
	if lenSquared == 0 {
		return s.Start
	}
	t := dot(p.Sub(s.Start), d) / lenSquared
	if t <= 0 {
		return s.Start
	}
	if t >= 1 {
		return s.End
	}
	return s.Start.Add(d.Mulf(t))
}

// Whether p lies exactly on the closed segment.
func (s Segment) Contains(p Point) bool {
	if cross3(s.Start, s.End, p) != 0 {
		return false
	}
	if s.Start == s.End {
		return p == s.Start
	}
	d := s.End.Sub(s.Start)
	t := dot(p.Sub(s.Start), d)
	return t >= 0 && t <= dot(d, d)
}
