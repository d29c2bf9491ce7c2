package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Relative tolerance for the collinearity test. The cross product of AB and AC
// is compared against |AB|*|AC|, so this is roughly the sine of the smallest
// angle at A we accept.
const collinearTolerance = 1e-12

func Distance(a, b Point) float64 {
	return a.Vec().Sub(b.Vec()).Len()
}

// Circumradius of the triangle ABC, by Heron's formula:
//
//	R = abc / (4 * sqrt(s(s-a)(s-b)(s-c)))
//
// Collinear or coincident points have no circumcircle. Rounding can leave a
// tiny positive radicand for points that are collinear in exact arithmetic, so
// the cross product is checked as well.
func Circumradius(A, B, C Point) (float64, error) {
	a := Distance(B, C)
	b := Distance(A, C)
	c := Distance(A, B)
	if a == 0 || b == 0 || c == 0 {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "coincident points in %v %v %v", A, B, C)
	}

	ab := B.Vec().Sub(A.Vec())
	ac := C.Vec().Sub(A.Vec())
	cross := ab.X()*ac.Y() - ab.Y()*ac.X()
	if math.Abs(cross) <= collinearTolerance*c*b {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "collinear points %v %v %v", A, B, C)
	}

	s := (a + b + c) / 2
	radicand := s * (s - a) * (s - b) * (s - c)
	if !(radicand > 0) {
		return 0, errors.Wrapf(ErrDegenerateTriangle, "non-positive area for %v %v %v", A, B, C)
	}

	return a * b * c / (4 * math.Sqrt(radicand)), nil
}
