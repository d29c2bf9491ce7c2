package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The centers of the two circles of radius alpha through p and q. They sit on
// the perpendicular bisector of pq, either side of its midpoint. The first
// center is to the left of the direction p->q.
func AlphaCenters(p, q Point, alpha float64) (Point, Point, error) {
	edge := q.Vec().Sub(p.Vec())
	length := edge.Len()
	half := length / 2
	if half > alpha {
		return Point{}, Point{}, errors.Wrapf(ErrRadiusTooSmall, "edge %v-%v has length %g, alpha is %g", p, q, length, alpha)
	}
	if length == 0 {
		return Point{}, Point{}, errors.Wrapf(ErrDegenerateTriangle, "zero length edge at %v", p)
	}

	offset := math.Sqrt(alpha*alpha - half*half)
	midpoint := p.Vec().Add(q.Vec()).Mul(0.5)
	// Left-hand normal of the edge, scaled to the offset
	normal := edge.Mul(1 / length)
	normal[0], normal[1] = -normal[1], normal[0]
	normal = normal.Mul(offset)

	return PointFromVec(midpoint.Add(normal)), PointFromVec(midpoint.Sub(normal)), nil
}

// Check the alpha-shape emptiness property of a hull. Every hull edge must have
// a circle of radius alpha through its endpoints such that every input point
// lies within that circle. Both candidate circles are tried for each edge.
//
// A hull of fewer than three points is never valid. An edge longer than 2α
// fails with ErrRadiusTooSmall.
func Validate(hull, input []Point, alpha float64) (bool, error) {
	if len(hull) < minActivePoints {
		return false, nil
	}

	for i, p := range hull {
		q := hull[CircularIndex(i+1, len(hull))]
		left, right, err := AlphaCenters(p, q, alpha)
		if err != nil {
			return false, err
		}
		if !containsAll(left, alpha, input) && !containsAll(right, alpha, input) {
			return false, nil
		}
	}
	return true, nil
}

func containsAll(center Point, radius float64, points []Point) bool {
	for _, p := range points {
		// Hull endpoints lie on the circle, up to rounding
		if d := Distance(center, p); d > radius && !Equal(d, radius) {
			return false
		}
	}
	return true
}
