package advanced

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Return the equivalent halfspace representation of the hull, i.e. a matrix A
// and vector b such that the points inside the hull are exactly
//
//	{x | A x ≤ b}
//
// Row i of A is the outward normal of edge i: the edge direction rotated
// clockwise for CCW hulls, counterclockwise for CW hulls. Normals are not
// normalized, so each has the length of its edge. Returns ErrDegenerate for
// hulls with fewer than three vertices.
func (hull *ConvexHull) HRep() (*mat.Dense, *mat.VecDense, error) {
	n := len(hull.vertices)
	if n < 3 {
		return nil, nil, errors.Wrapf(ErrDegenerate, "halfspace representation of hull with %d vertices", n)
	}
	A := mat.NewDense(n, 2, nil)
	b := mat.NewVecDense(n, nil)
	if err := hull.HRepInto(A, b); err != nil {
		return nil, nil, err
	}
	return A, b, nil
}

// Like HRep, but stores its output in A and b, which must be h×2 and of
// length h, where h is the number of vertices. It performs no allocation.
// Sizes are checked before anything is written.
func (hull *ConvexHull) HRepInto(A *mat.Dense, b *mat.VecDense) error {
	n := len(hull.vertices)
	if n < 3 {
		return errors.Wrapf(ErrDegenerate, "halfspace representation of hull with %d vertices", n)
	}
	if A == nil || b == nil {
		return errors.Wrap(ErrSizeMismatch, "nil output")
	}
	if rows, cols := A.Dims(); rows != n || cols != 2 {
		return errors.Wrapf(ErrSizeMismatch, "A is %d×%d, need %d×2", rows, cols, n)
	}
	if b.Len() != n {
		return errors.Wrapf(ErrSizeMismatch, "b has length %d, need %d", b.Len(), n)
	}

	for i := 0; i < n; i++ {
		edge := hull.Edge(i)
		normal := hull.outwardNormal(edge)
		A.Set(i, 0, normal.X)
		A.Set(i, 1, normal.Y)
		b.SetVec(i, dot(normal, edge.Start))
	}
	return nil
}

// Rotate the edge direction a quarter turn away from the interior. Negation is
// written as 0-x so that axis aligned edges never produce a negative zero.
func (hull *ConvexHull) outwardNormal(edge Segment) Point {
	d := edge.End.Sub(edge.Start)
	if hull.order == CW {
		return Point{X: 0 - d.Y, Y: d.X}
	}
	return Point{X: d.Y, Y: 0 - d.X}
}
