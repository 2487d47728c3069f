package grid

import (
	"iter"

	"github.com/katalvlaran/grid2d/geom"
)

// Resize geometrically reshapes the grid to a new region. Every cell of
// intersect(old, new) keeps its world coordinate — it is copied from its
// old-relative offset to its new-relative offset — and every cell of the
// new region outside the overlap becomes the default value. The raw
// buffer is never reinterpreted: a cell's meaning is its position, not
// its slot.
//
// Panics with ErrAliasingViolation if any view is live, since resize
// invalidates every outstanding window.
// Complexity: O(max(old Area, new Area)).
func (g *Grid[T]) Resize(r geom.RegionLike) {
	g.mustHaveNoLiveViews("Resize")
	next := geom.RegionOf(r)
	if next == g.region {
		return
	}
	data := make([]T, next.Area())
	for i := range data {
		data[i] = g.def
	}
	overlap := g.region.Intersect(next)
	if !overlap.IsEmpty() {
		w := overlap.Width()
		for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
			src := g.region.Index(geom.Pt(overlap.Min.X, y))
			dst := next.Index(geom.Pt(overlap.Min.X, y))
			copy(data[dst:dst+w], g.data[src:src+w])
		}
	}
	g.data = data
	g.region = next
}

// cellAround returns the 1x1 region holding a single point.
func cellAround(p geom.Point) geom.Region {
	return geom.Region{Min: p, Max: p.Add(geom.Pt(1, 1))}
}

// Insert writes a value at p, growing the grid to include p first when
// necessary. Newly exposed cells take the default value.
func (g *Grid[T]) Insert(pl geom.PointLike, v T) {
	p := geom.PointOf(pl)
	if !g.region.Contains(p) {
		g.Resize(g.region.Union(cellAround(p)))
	}
	g.setAt(p, v)
}

// Extend grows the grid to cover the union of its region with r, then
// writes the given points. Points falling outside the grown region are
// discarded; Extend reports whether none were.
func (g *Grid[T]) Extend(r geom.RegionLike, points iter.Seq2[geom.Point, T]) bool {
	g.Resize(g.region.Union(geom.RegionOf(r)))
	kept := true
	for p, v := range points {
		if g.Set(p, v) != nil {
			kept = false
		}
	}
	return kept
}
