package internal

// Binary max-heap of removal candidates, keyed by circumradius.
//
// Candidates are never re-prioritized in place. When a candidate goes stale,
// the reducer discovers that on peek and extracts it; the heap itself knows
// nothing about which points or triangles are alive.
//
// The backing slice is 0-based, so the parent of i is (i-1)/2 and its children
// are 2i+1 and 2i+2.
type RadiusHeap struct {
	candidates []Candidate
}

func NewRadiusHeap(capacity int) *RadiusHeap {
	return &RadiusHeap{candidates: make([]Candidate, 0, capacity)}
}

func (h *RadiusHeap) Len() int {
	return len(h.candidates)
}

func (h *RadiusHeap) Empty() bool {
	return len(h.candidates) == 0
}

func (h *RadiusHeap) Insert(c Candidate) {
	h.candidates = append(h.candidates, c)
	h.siftUp(len(h.candidates) - 1)
}

func (h *RadiusHeap) PeekMax() (Candidate, error) {
	if h.Empty() {
		return Candidate{}, ErrEmptyHeap
	}
	return h.candidates[0], nil
}

// Remove and return the candidate with the largest radius.
func (h *RadiusHeap) ExtractMax() (Candidate, error) {
	if h.Empty() {
		return Candidate{}, ErrEmptyHeap
	}
	last := len(h.candidates) - 1
	h.swap(0, last)
	top := h.candidates[last]
	h.candidates = h.candidates[:last]
	h.siftDown(0)
	return top, nil
}

// The candidates in heap order (not sorted). The slice is a copy.
func (h *RadiusHeap) Candidates() []Candidate {
	return append([]Candidate(nil), h.candidates...)
}

func (h *RadiusHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.candidates[parent].Radius >= h.candidates[i].Radius {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *RadiusHeap) siftDown(i int) {
	n := len(h.candidates)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.candidates[right].Radius > h.candidates[left].Radius {
			child = right
		}
		if h.candidates[child].Radius <= h.candidates[i].Radius {
			break
		}
		h.swap(i, child)
		i = child
	}
}

func (h *RadiusHeap) swap(i, j int) {
	h.candidates[i], h.candidates[j] = h.candidates[j], h.candidates[i]
}
