package internal

import (
	"iter"

	"github.com/pkg/errors"
)

// The point ring is a fixed array of points in their original order. Points
// are never removed from the array, only deactivated, so indexes handed out to
// triangles and candidates stay valid for the life of the ring.
type PointRing struct {
	points      []RingPoint
	activeCount int
}

func NewPointRing(points []Point) *PointRing {
	ring := &PointRing{
		points:      make([]RingPoint, len(points)),
		activeCount: len(points),
	}
	for i, p := range points {
		ring.points[i] = RingPoint{Point: p, Active: true}
	}
	return ring
}

func (r *PointRing) Len() int {
	return len(r.points)
}

func (r *PointRing) ActiveCount() int {
	return r.activeCount
}

func (r *PointRing) Point(i int) Point {
	return r.points[CircularIndex(i, len(r.points))].Point
}

func (r *PointRing) IsActive(i int) bool {
	return r.points[CircularIndex(i, len(r.points))].Active
}

func (r *PointRing) Deactivate(i int) {
	p := &r.points[CircularIndex(i, len(r.points))]
	if p.Active {
		p.Active = false
		r.activeCount--
	}
}

// Find the closest active point before i, walking backwards around the ring.
func (r *PointRing) PreviousActive(i int) (int, error) {
	return r.walk(i, -1)
}

// Find the closest active point after i, walking forwards around the ring.
func (r *PointRing) NextActive(i int) (int, error) {
	return r.walk(i, 1)
}

func (r *PointRing) walk(i, step int) (int, error) {
	n := len(r.points)
	if n == 0 {
		return 0, errors.Wrap(ErrRingExhausted, "empty ring")
	}
	start := CircularIndex(i, n)
	for j := CircularIndex(start+step, n); j != start; j = CircularIndex(j+step, n) {
		if r.points[j].Active {
			return j, nil
		}
	}
	return 0, errors.Wrapf(ErrRingExhausted, "no active neighbor of point %d", start)
}

// Iterate over the active points in original ring order. The sequence reads
// the ring lazily, so it reflects the flags at the time it is consumed, and
// can be ranged over any number of times.
func (r *PointRing) ActivePoints() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range r.points {
			if !p.Active {
				continue
			}
			if !yield(i, p.Point) {
				return
			}
		}
	}
}

func (r *PointRing) ActiveIndices() []int {
	indices := make([]int, 0, r.activeCount)
	for i := range r.ActivePoints() {
		indices = append(indices, i)
	}
	return indices
}
