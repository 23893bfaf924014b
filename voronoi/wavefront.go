package voronoi

import "github.com/FranciscoPDNeto/eucligpu/geom"

// Wavefront is the unordered multiset of pixel coordinates scheduled for
// relaxation. Duplicates are permitted but wasteful; de-duplication is an
// optimization, never a correctness requirement. Implemented as a plain
// slice used as a FIFO: born in seeding, drained in propagation, empty at
// termination.
type Wavefront struct {
	items []geom.Coord
}

// NewWavefront returns an empty wavefront with capacity hinted by cap.
func NewWavefront(capHint int) *Wavefront {
	return &Wavefront{items: make([]geom.Coord, 0, capHint)}
}

// Push enqueues c.
func (w *Wavefront) Push(c geom.Coord) {
	w.items = append(w.items, c)
}

// Empty reports whether the wavefront currently holds no items.
func (w *Wavefront) Empty() bool { return len(w.items) == 0 }

// Len returns the number of currently queued items.
func (w *Wavefront) Len() int { return len(w.items) }

// Pop removes and returns an arbitrary (here: the oldest) item. Pop panics
// if the wavefront is empty; callers must check Empty first.
func (w *Wavefront) Pop() geom.Coord {
	c := w.items[0]
	w.items = w.items[1:]
	return c
}

// Drain removes and returns every currently queued item, leaving the
// wavefront empty. Used by bulk-relaxation backends that process one
// generation of the frontier per pass.
func (w *Wavefront) Drain() []geom.Coord {
	items := w.items
	w.items = nil
	return items
}

// Snapshot returns the currently queued items without removing them.
func (w *Wavefront) Snapshot() []geom.Coord {
	return w.items
}
