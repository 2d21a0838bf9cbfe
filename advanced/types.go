package advanced

import "github.com/quasilyte/gmath"

// Points are plain values. Vertices of a hull are copies of the input points,
// never modified after construction, so equality between a vertex and the
// input point it came from is exact.
type Point = gmath.Vec

// A VertexOrder is the rotational convention a hull's vertices are stored in.
type VertexOrder int

const (
	CCW VertexOrder = iota
	CW
)

// Sign of the cross product of consecutive edges for this order: +1 for left
// turns, -1 for right turns.
func (o VertexOrder) Sign() float64 {
	if o == CW {
		return -1
	}
	return 1
}

func (o VertexOrder) Opposite() VertexOrder {
	if o == CW {
		return CCW
	}
	return CW
}

func (o VertexOrder) String() string {
	if o == CW {
		return "CW"
	}
	return "CCW"
}

// Segment is a directed edge between two hull vertices.
type Segment struct {
	Start Point
	End   Point
}
