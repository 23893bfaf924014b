// Package voronoi holds the flat, index-keyed nearest-background table the
// propagation engine relaxes, and the seeding pass that initializes it.
package voronoi

import "github.com/FranciscoPDNeto/eucligpu/geom"

// Entry is the per-pixel record: Point is the coordinate whose index this
// entry lives at (kept redundantly for locality when the table is shipped to
// an accelerator); NearestBackground is either a background coordinate of
// the image, or geom.Invalid() meaning "none known yet".
type Entry struct {
	Point             geom.Coord
	NearestBackground geom.Coord
}

// Diagram is a flat table of N entries indexed by linear pixel index, the
// "hash table keyed by pixel index" of the source collapsed to its identity
// case (spec.md §9 "Map keyed by pixel index"): table size always equals N,
// so there is nothing left to hash.
type Diagram struct {
	entries []Entry
}

// New allocates a diagram with exactly n entries, all left at the zero Entry.
// Callers must run a seeding pass before relying on its contents.
func New(n int) *Diagram {
	return &Diagram{entries: make([]Entry, n)}
}

// Len returns the number of entries (N).
func (d *Diagram) Len() int { return len(d.entries) }

// At returns the entry at linear index idx.
func (d *Diagram) At(idx uint32) Entry { return d.entries[idx] }

// Set overwrites the entry at linear index idx.
func (d *Diagram) Set(idx uint32, e Entry) { d.entries[idx] = e }

// DistanceAt returns the Euclidean distance from the entry's own point to its
// current nearest-background coordinate (0 for a source entry, +Inf for an
// entry whose NearestBackground is still invalid).
func (d *Diagram) DistanceAt(idx uint32) float32 {
	e := d.entries[idx]
	return geom.Distance(e.Point, e.NearestBackground)
}

// Relax sets entries[idx].NearestBackground = candidate if candidate is
// strictly closer (by Euclidean distance) than the current value, and
// reports whether it did. candidate must be geom.Invalid() or a coordinate
// that is background in the source image; Relax does not re-validate that.
func (d *Diagram) Relax(idx uint32, candidate geom.Coord) bool {
	e := &d.entries[idx]
	if geom.Distance(e.Point, candidate) < geom.Distance(e.Point, e.NearestBackground) {
		e.NearestBackground = candidate
		return true
	}
	return false
}
