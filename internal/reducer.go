package internal

import (
	"go.uber.org/zap"
)

// The smallest ring the reducer will produce. Removing a point from a
// triangle would leave nothing to build the replacement triangles from.
const minActivePoints = 3

// A record of one reduction step, handed to the tracer.
type Step struct {
	// Ring index of the removed point, and the circumradius that removed it
	Removed int
	Radius  float64
	// Triangles retired because they were generated by the removed point
	Deactivated []int
	// The two triangles built across the gap
	Added [2]int
	// Active points left after the step
	ActiveCount int
}

type ReducerStats struct {
	Steps          int
	StalePops      int
	TrianglesBuilt int
}

type ReducerOption func(*Reducer)

func WithLogger(logger *zap.Logger) ReducerOption {
	return func(r *Reducer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func WithTracer(tracer func(Step)) ReducerOption {
	return func(r *Reducer) {
		r.tracer = tracer
	}
}

// The reducer owns a point ring, the triangle log built over it, and the heap
// of removal candidates. It greedily removes the middle point of the triangle
// with the largest circumradius until every live triangle has a circumradius
// of at most alpha.
//
// A reducer computes one hull. It is not safe for concurrent use, and the
// reduction is inherently sequential: every step must act on the current
// global maximum.
type Reducer struct {
	alpha     float64
	ring      *PointRing
	triangles *TriangleStore
	heap      *RadiusHeap

	logger *zap.Logger
	tracer  func(Step)
	stats   ReducerStats
	reduced bool
}

func NewReducer(points []Point, alpha float64, opts ...ReducerOption) *Reducer {
	ring := NewPointRing(points)
	r := &Reducer{
		alpha:     alpha,
		ring:      ring,
		triangles: NewTriangleStore(ring),
		heap:      NewRadiusHeap(len(points)),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run the reduction to completion and return the surviving points in their
// original ring order. A reducer computes one hull; later calls return it
// again without re-seeding. Failures panic with a HullError; use
// HandleHullPanicRecover to turn them back into errors.
func (r *Reducer) Reduce() []Point {
	if r.ring.Len() < minActivePoints {
		r.logger.Warn("need at least 3 points", zap.Int("points", r.ring.Len()))
		return []Point{}
	}
	if r.reduced {
		return r.Hull()
	}

	r.seed()
	for r.scan() {
	}
	r.reduced = true
	return r.Hull()
}

// One triangle and one candidate per point, over the point and its two
// successors, so the candidate for ring index i removes point i+1.
func (r *Reducer) seed() {
	n := r.ring.Len()
	for i := 0; i < n; i++ {
		r.push(i, CircularIndex(i+1, n), CircularIndex(i+2, n))
	}
	r.logger.Debug("seeded",
		zap.Int("points", n),
		zap.Int("candidates", r.heap.Len()),
		zap.Float64("alpha", r.alpha),
	)
}

// Inspect the top of the heap and act on it. Returns false when the reduction
// is done.
func (r *Reducer) scan() bool {
	if r.heap.Empty() {
		r.logger.Debug("done: heap drained")
		return false
	}
	if r.ring.ActiveCount() <= minActivePoints {
		r.logger.Debug("done: minimum ring reached", zap.Int("active", r.ring.ActiveCount()))
		return false
	}

	top, err := r.heap.PeekMax()
	check(err)

	if !r.isLive(top) {
		r.stats.StalePops++
		_, err := r.heap.ExtractMax()
		check(err)
		return true
	}

	if top.Radius <= r.alpha {
		r.logger.Debug("done: largest circumradius within alpha", zap.Float64("radius", top.Radius))
		return false
	}

	r.remove(top)
	return true
}

func (r *Reducer) isLive(c Candidate) bool {
	return r.triangles.IsActive(c.Triangle) &&
		r.ring.IsActive(c.Front) &&
		r.ring.IsActive(c.Mid) &&
		r.ring.IsActive(c.End)
}

// Remove the middle point of a live candidate and rebuild the two triangles
// across the gap.
func (r *Reducer) remove(c Candidate) {
	r.ring.Deactivate(c.Mid)
	if r.ring.ActiveCount() < minActivePoints {
		fatalf("removing point %d left %d active points", c.Mid, r.ring.ActiveCount())
	}
	// Retire by adjacency rather than by position in the log: a triangle is
	// stale exactly when it was generated by the removed point.
	deactivated := r.triangles.DeactivateTouching(c.Mid)

	_, err := r.heap.ExtractMax()
	check(err)

	prev, err := r.ring.PreviousActive(c.Mid)
	check(err)
	next, err := r.ring.NextActive(c.Mid)
	check(err)
	prevPrev, err := r.ring.PreviousActive(prev)
	check(err)
	nextNext, err := r.ring.NextActive(next)
	check(err)

	step := Step{
		Removed:     c.Mid,
		Radius:      c.Radius,
		Deactivated: deactivated,
		Added: [2]int{
			r.push(prevPrev, prev, next),
			r.push(prev, next, nextNext),
		},
		ActiveCount: r.ring.ActiveCount(),
	}
	r.stats.Steps++

	r.logger.Debug("removed point",
		zap.Int("point", c.Mid),
		zap.Float64("radius", c.Radius),
		zap.Int("prev", prev),
		zap.Int("next", next),
		zap.Int("active", step.ActiveCount),
	)
	if r.tracer != nil {
		r.tracer(step)
	}
}

// Build a triangle and queue its candidate, returning the triangle index.
func (r *Reducer) push(front, mid, end int) int {
	index, triangle, err := r.triangles.Add(front, mid, end)
	check(err)
	r.stats.TrianglesBuilt++
	r.heap.Insert(Candidate{
		Front:    front,
		Mid:      mid,
		End:      end,
		Triangle: index,
		Radius:   triangle.Circumradius,
	})
	return index
}

// The active points, in original ring order.
func (r *Reducer) Hull() []Point {
	hull := make([]Point, 0, r.ring.ActiveCount())
	for _, p := range r.ring.ActivePoints() {
		hull = append(hull, p)
	}
	return hull
}

func (r *Reducer) HullIndices() []int {
	return r.ring.ActiveIndices()
}

func (r *Reducer) Stats() ReducerStats {
	return r.stats
}

func (r *Reducer) Triangles() []Triangle {
	return r.triangles.Triangles()
}

func (r *Reducer) Alpha() float64 {
	return r.alpha
}
