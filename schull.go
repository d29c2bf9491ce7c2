// Strictly convex hulls of 2-D point rings.
//
// A strictly convex hull (SCH) is an alpha-shape style simplification of a
// point ring. Points are removed greedily: at each step, the point whose
// triangle with its two active neighbors has the largest circumradius is
// removed, until no such triangle has a circumradius larger than alpha. The
// result can then be checked for the alpha-shape emptiness property with
// Validate.
package schull

import (
	"math"

	"github.com/osuushi/schull/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Point = internal.Point
type Step = internal.Step

var (
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
	ErrRingExhausted      = internal.ErrRingExhausted
	ErrEmptyHeap          = internal.ErrEmptyHeap
	ErrInputUnavailable   = internal.ErrInputUnavailable
	ErrRadiusTooSmall     = internal.ErrRadiusTooSmall
	ErrInvalidAlpha       = internal.ErrInvalidAlpha
)

type Option = internal.ReducerOption

// Log each state transition of the reduction at debug level.
func WithLogger(logger *zap.Logger) Option {
	return internal.WithLogger(logger)
}

// Call tracer after every point removal.
func WithTracer(tracer func(Step)) Option {
	return internal.WithTracer(tracer)
}

// Reduce a point ring to its strictly convex hull for the given alpha. The
// surviving points are returned in their original ring order.
//
// Fewer than three points give an empty hull. A ring of three points is
// returned unchanged. Collinear or coincident triples encountered along the
// way abort the computation with ErrDegenerateTriangle.
func ComputeHull(points []Point, alpha float64, opts ...Option) (result []Point, err error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return nil, errors.Wrapf(ErrInvalidAlpha, "%g", alpha)
	}

	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.NewReducer(points, alpha, opts...).Reduce(), nil
}

// Check that every edge of hull has a circle of radius alpha through its
// endpoints containing every input point.
func Validate(hull, input []Point, alpha float64) (bool, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return false, errors.Wrapf(ErrInvalidAlpha, "%g", alpha)
	}
	return internal.Validate(hull, input, alpha)
}
