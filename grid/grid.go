package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/grid2d/geom"
)

// Grid is an owned dense 2D container. It holds a row-major buffer of
// exactly region.Area() elements; the region places the buffer in an
// unbounded signed coordinate space, and every contained coordinate maps
// to exactly one buffer slot. Coordinates outside the region are not
// stored anywhere — they are conceptually the default value for the
// purposes of resize and merge fill-in, never materialized.
//
// A Grid is single-owner and not safe for concurrent use.
type Grid[T any] struct {
	data   []T
	region geom.Region
	def    T
	locks  []*viewLock
}

// New returns a grid over the given region with every cell set to def.
// def also becomes the grid's default value for later fill-in.
// Complexity: O(Area).
func New[T any](r geom.RegionLike, def T) *Grid[T] {
	region := geom.RegionOf(r)
	data := make([]T, region.Area())
	for i := range data {
		data[i] = def
	}
	return &Grid[T]{data: data, region: region, def: def}
}

// Generate returns a grid over the given region whose cells are produced
// by gen, called once per point in row-major order.
// Complexity: O(Area).
func Generate[T any](r geom.RegionLike, def T, gen func(geom.Point) T) *Grid[T] {
	region := geom.RegionOf(r)
	data := make([]T, 0, region.Area())
	for p := range region.Points() {
		data = append(data, gen(p))
	}
	return &Grid[T]{data: data, region: region, def: def}
}

// FromSlice wraps an existing row-major buffer. The region declares both
// extent and origin (use geom.Size for a zero origin). Returns
// ErrShortBuffer when data holds fewer elements than the region; extra
// elements are ignored. The grid takes ownership of the used prefix.
func FromSlice[T any](data []T, r geom.RegionLike, def T) (*Grid[T], error) {
	region := geom.RegionOf(r)
	if len(data) < region.Area() {
		return nil, fmt.Errorf("%w: have %d, region %v needs %d",
			ErrShortBuffer, len(data), region, region.Area())
	}
	return &Grid[T]{data: data[:region.Area()], region: region, def: def}, nil
}

// Clone returns a deep copy of the grid. The copy starts with no live
// views regardless of the original's.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, region: g.region, def: g.def}
}

// Region returns the grid's position and extent in world coordinates.
func (g *Grid[T]) Region() geom.Region {
	return g.region
}

// Width returns the horizontal extent of the grid.
func (g *Grid[T]) Width() int {
	return g.region.Width()
}

// Height returns the vertical extent of the grid.
func (g *Grid[T]) Height() int {
	return g.region.Height()
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return g.region.Area()
}

// IsEmpty reports whether the grid holds no cells.
func (g *Grid[T]) IsEmpty() bool {
	return g.region.IsEmpty()
}

// Default returns the grid's designated default value.
func (g *Grid[T]) Default() T {
	return g.def
}

// Contains reports whether a point lies inside the grid's region.
func (g *Grid[T]) Contains(p geom.PointLike) bool {
	return g.region.Contains(p)
}

// at reads a cell the caller has already bounds-checked.
func (g *Grid[T]) at(p geom.Point) T {
	return g.data[g.region.Index(p)]
}

// setAt writes a cell the caller has already bounds-checked.
func (g *Grid[T]) setAt(p geom.Point, v T) {
	g.data[g.region.Index(p)] = v
}

// Get returns the cell at p, or ErrOutOfBounds if p is not contained in
// the grid's region. Out-of-bounds access is never silently clipped.
// Complexity: O(1).
func (g *Grid[T]) Get(pl geom.PointLike) (T, error) {
	p := geom.PointOf(pl)
	if !g.region.Contains(p) {
		var zero T
		return zero, fmt.Errorf("%w: point %v outside %v", ErrOutOfBounds, p, g.region)
	}
	return g.at(p), nil
}

// Fetch returns the cell at p, or the grid's default value if p is not
// contained. Complexity: O(1).
func (g *Grid[T]) Fetch(pl geom.PointLike) T {
	p := geom.PointOf(pl)
	if !g.region.Contains(p) {
		return g.def
	}
	return g.at(p)
}

// Set writes the cell at p, or returns ErrOutOfBounds if p is not
// contained. Complexity: O(1).
func (g *Grid[T]) Set(pl geom.PointLike, v T) error {
	p := geom.PointOf(pl)
	if !g.region.Contains(p) {
		return fmt.Errorf("%w: point %v outside %v", ErrOutOfBounds, p, g.region)
	}
	g.setAt(p, v)
	return nil
}

// Fill sets every cell to v. Complexity: O(Area).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Points yields every world coordinate of the grid in row-major order.
func (g *Grid[T]) Points() iter.Seq[geom.Point] {
	return g.region.Points()
}

// All yields every (point, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range g.region.Points() {
			if !yield(p, g.at(p)) {
				return
			}
		}
	}
}

// Values yields every cell value in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Rows yields one subslice of the backing buffer per row, top to bottom.
// The slices share storage with the grid; treat them as read-only unless
// the grid has no live views.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		w := g.region.Width()
		if w <= 0 {
			return
		}
		for y := 0; y < g.region.Height(); y++ {
			if !yield(g.data[y*w : (y+1)*w : (y+1)*w]) {
				return
			}
		}
	}
}

// Displace moves the grid's origin by the given offset without touching
// cell data. Panics with ErrAliasingViolation if any view is live, since
// views address the parent by world coordinates.
func (g *Grid[T]) Displace(by geom.PointLike) {
	g.mustHaveNoLiveViews("Displace")
	g.region = g.region.Translate(geom.PointOf(by))
}
