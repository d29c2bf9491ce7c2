package internal

import "github.com/go-gl/mathgl/mgl64"

// Points are plain values. The ring, the triangle log and the heap all refer
// to points by their index in the original ring, never by address, so nothing
// ever needs to alias a point.
type Point struct {
	X float64
	Y float64
}

func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func PointFromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// A point in the ring, along with its liveness. Removal only clears Active.
type RingPoint struct {
	Point
	Active bool
}

// A triangle from the triangle log. Front, Mid and End are ring indices of the
// points that generated it; A, B and C are copies of their coordinates.
type Triangle struct {
	A, B, C Point

	Front, Mid, End int

	Circumradius float64
	Active       bool
}

// Names reports whether the triangle was generated by the given ring index.
func (t Triangle) Names(point int) bool {
	return t.Front == point || t.Mid == point || t.End == point
}

// A pending removal of Mid, keyed by the circumradius of its triangle.
type Candidate struct {
	Front, Mid, End int
	Triangle        int
	Radius          float64
}
