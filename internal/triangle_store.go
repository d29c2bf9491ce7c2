package internal

// Append-only log of triangles. Heap candidates hold indexes into the log, so
// triangles are never erased; retiring one only clears its Active flag.
type TriangleStore struct {
	ring      *PointRing
	triangles []Triangle
	// Triangle indexes by the ring index of each point that generated them.
	byPoint map[int][]int
}

func NewTriangleStore(ring *PointRing) *TriangleStore {
	return &TriangleStore{
		ring:    ring,
		byPoint: make(map[int][]int),
	}
}

// Build the triangle over three ring points and append it to the log. Fails
// with ErrDegenerateTriangle if the points have no circumcircle.
func (s *TriangleStore) Add(front, mid, end int) (int, Triangle, error) {
	a, b, c := s.ring.Point(front), s.ring.Point(mid), s.ring.Point(end)
	radius, err := Circumradius(a, b, c)
	if err != nil {
		return 0, Triangle{}, err
	}

	triangle := Triangle{
		A: a, B: b, C: c,
		Front: front, Mid: mid, End: end,
		Circumradius: radius,
		Active:       true,
	}
	index := len(s.triangles)
	s.triangles = append(s.triangles, triangle)
	for _, p := range []int{front, mid, end} {
		s.byPoint[p] = append(s.byPoint[p], index)
	}
	return index, triangle, nil
}

func (s *TriangleStore) Len() int {
	return len(s.triangles)
}

func (s *TriangleStore) Get(index int) Triangle {
	return s.triangles[index]
}

func (s *TriangleStore) IsActive(index int) bool {
	return s.triangles[index].Active
}

func (s *TriangleStore) Deactivate(index int) {
	s.triangles[index].Active = false
}

// Deactivate every active triangle generated by the given point, returning
// the indexes that were deactivated, in log order.
func (s *TriangleStore) DeactivateTouching(point int) []int {
	var deactivated []int
	for _, index := range s.byPoint[point] {
		if s.triangles[index].Active {
			s.Deactivate(index)
			deactivated = append(deactivated, index)
		}
	}
	return deactivated
}

// All triangles in the log, active or not. The slice is a copy.
func (s *TriangleStore) Triangles() []Triangle {
	return append([]Triangle(nil), s.triangles...)
}
