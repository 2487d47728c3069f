package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/grid2d/geom"
)

// Source is the read capability shared by *Grid and *View. The
// combination operators accept any Source, so grids and views mix
// freely as operands.
type Source[T any] interface {
	// Region returns the operand's position and extent in world space.
	Region() geom.Region
	// Get returns the cell at a contained point, ErrOutOfBounds otherwise.
	Get(p geom.PointLike) (T, error)
	// Default returns the value conceptually filling non-represented cells.
	Default() T
}

// viewLock is the runtime region-lock token backing the aliasing
// contract. One token is live per unreleased view.
type viewLock struct {
	region   geom.Region
	writable bool
}

// acquire registers a new view region, panicking with
// ErrAliasingViolation when the aliasing contract would be broken:
// a writable region may overlap nothing live, and no region may overlap
// a live writable one.
func (g *Grid[T]) acquire(region geom.Region, writable bool) *viewLock {
	for _, l := range g.locks {
		if !(writable || l.writable) {
			continue
		}
		if !l.region.Intersect(region).IsEmpty() {
			panic(fmt.Errorf("%w: %v overlaps live view %v", ErrAliasingViolation, region, l.region))
		}
	}
	l := &viewLock{region: region, writable: writable}
	g.locks = append(g.locks, l)
	return l
}

// release drops a token registered by acquire.
func (g *Grid[T]) release(lock *viewLock) {
	for i, l := range g.locks {
		if l == lock {
			g.locks = append(g.locks[:i], g.locks[i+1:]...)
			return
		}
	}
}

// mustHaveNoLiveViews guards operations that would invalidate every
// outstanding window, such as Resize and Displace.
func (g *Grid[T]) mustHaveNoLiveViews(op string) {
	if len(g.locks) > 0 {
		panic(fmt.Errorf("%w: %s with %d live view(s)", ErrAliasingViolation, op, len(g.locks)))
	}
}

// View is a non-owning read-only window onto a parent grid, scoped to a
// sub-region of the parent's region. A view must not outlive its parent,
// and holds a shared region token until Release is called.
type View[T any] struct {
	grid   *Grid[T]
	region geom.Region
	lock   *viewLock
}

// MutableView is a non-owning exclusive-write window. While it is live,
// no other view — read or write — may overlap its region.
type MutableView[T any] struct {
	View[T]
}

// View returns a read-only window over exactly the given region. The
// region must be fully contained in the grid's region; partial coverage
// is ErrOutOfBounds, never clipped (that is Slice's job). Panics with
// ErrAliasingViolation if the region overlaps a live MutableView.
func (g *Grid[T]) View(r geom.RegionLike) (*View[T], error) {
	region := geom.RegionOf(r)
	if !g.region.ContainsRegion(region) {
		return nil, fmt.Errorf("%w: region %v not contained in %v", ErrOutOfBounds, region, g.region)
	}
	return &View[T]{grid: g, region: region, lock: g.acquire(region, false)}, nil
}

// Slice returns a read-only window over the intersection of the given
// region with the grid's region. Never fails; the result may be empty.
// Panics with ErrAliasingViolation if the clipped region overlaps a live
// MutableView.
func (g *Grid[T]) Slice(r geom.RegionLike) *View[T] {
	region := g.region.Intersect(geom.RegionOf(r))
	return &View[T]{grid: g, region: region, lock: g.acquire(region, false)}
}

// Mutable returns an exclusive-write window over exactly the given
// region. The region must be fully contained (ErrOutOfBounds otherwise).
// Panics with ErrAliasingViolation if the region overlaps any live view.
func (g *Grid[T]) Mutable(r geom.RegionLike) (*MutableView[T], error) {
	region := geom.RegionOf(r)
	if !g.region.ContainsRegion(region) {
		return nil, fmt.Errorf("%w: region %v not contained in %v", ErrOutOfBounds, region, g.region)
	}
	return &MutableView[T]{View[T]{grid: g, region: region, lock: g.acquire(region, true)}}, nil
}

// Release drops the view's region token, ending its participation in the
// aliasing contract. Idempotent; call it on every exit path, typically
// via defer.
func (v *View[T]) Release() {
	if v.lock == nil {
		return
	}
	v.grid.release(v.lock)
	v.lock = nil
}

// Region returns the view's window in world coordinates.
func (v *View[T]) Region() geom.Region {
	return v.region
}

// Width returns the horizontal extent of the view.
func (v *View[T]) Width() int {
	return v.region.Width()
}

// Height returns the vertical extent of the view.
func (v *View[T]) Height() int {
	return v.region.Height()
}

// Len returns the number of cells in the view.
func (v *View[T]) Len() int {
	return v.region.Area()
}

// IsEmpty reports whether the view covers no cells.
func (v *View[T]) IsEmpty() bool {
	return v.region.IsEmpty()
}

// Default returns the parent grid's default value.
func (v *View[T]) Default() T {
	return v.grid.def
}

// Contains reports whether a point lies inside the view's window.
func (v *View[T]) Contains(p geom.PointLike) bool {
	return v.region.Contains(p)
}

// Get returns the cell at p, or ErrOutOfBounds if p is outside the
// view's window — even when the parent grid would contain it.
func (v *View[T]) Get(pl geom.PointLike) (T, error) {
	p := geom.PointOf(pl)
	if !v.region.Contains(p) {
		var zero T
		return zero, fmt.Errorf("%w: point %v outside view %v", ErrOutOfBounds, p, v.region)
	}
	return v.grid.at(p), nil
}

// Fetch returns the cell at p, or the parent's default value if p is
// outside the view's window.
func (v *View[T]) Fetch(pl geom.PointLike) T {
	p := geom.PointOf(pl)
	if !v.region.Contains(p) {
		return v.grid.def
	}
	return v.grid.at(p)
}

// View returns a strict sub-window; the region must be fully contained
// in this view's window.
func (v *View[T]) View(r geom.RegionLike) (*View[T], error) {
	region := geom.RegionOf(r)
	if !v.region.ContainsRegion(region) {
		return nil, fmt.Errorf("%w: region %v not contained in view %v", ErrOutOfBounds, region, v.region)
	}
	return &View[T]{grid: v.grid, region: region, lock: v.grid.acquire(region, false)}, nil
}

// Slice returns a sub-window clipped to this view's window. Never fails.
func (v *View[T]) Slice(r geom.RegionLike) *View[T] {
	region := v.region.Intersect(geom.RegionOf(r))
	return &View[T]{grid: v.grid, region: region, lock: v.grid.acquire(region, false)}
}

// Points yields every world coordinate of the view in row-major order.
func (v *View[T]) Points() iter.Seq[geom.Point] {
	return v.region.Points()
}

// All yields every (point, value) pair of the view in row-major order.
func (v *View[T]) All() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range v.region.Points() {
			if !yield(p, v.grid.at(p)) {
				return
			}
		}
	}
}

// Values yields every cell value of the view in row-major order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.region.Points() {
			if !yield(v.grid.at(p)) {
				return
			}
		}
	}
}

// Rows yields one subslice of the parent buffer per view row, top to
// bottom. The slices share storage with the parent; treat them as
// read-only.
func (v *View[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if v.region.IsEmpty() {
			return
		}
		w := v.region.Width()
		for y := v.region.Min.Y; y < v.region.Max.Y; y++ {
			base := v.grid.region.Index(geom.Pt(v.region.Min.X, y))
			if !yield(v.grid.data[base : base+w : base+w]) {
				return
			}
		}
	}
}

// Materialize copies the view out into a fresh owned grid with the same
// region and the parent's default value. Complexity: O(Area).
func (v *View[T]) Materialize() *Grid[T] {
	return Generate(v.region, v.grid.def, v.grid.at)
}

// mustBeLive guards mutation through a released exclusive token.
func (v *MutableView[T]) mustBeLive() {
	if v.lock == nil {
		panic(fmt.Errorf("%w: write through released view %v", ErrAliasingViolation, v.region))
	}
}

// Set writes the cell at p, or returns ErrOutOfBounds if p is outside
// the view's window. Panics with ErrAliasingViolation if the view was
// already released.
func (v *MutableView[T]) Set(pl geom.PointLike, value T) error {
	v.mustBeLive()
	p := geom.PointOf(pl)
	if !v.region.Contains(p) {
		return fmt.Errorf("%w: point %v outside view %v", ErrOutOfBounds, p, v.region)
	}
	v.grid.setAt(p, value)
	return nil
}

// Fill sets every cell of the window to value.
func (v *MutableView[T]) Fill(value T) {
	v.mustBeLive()
	for p := range v.region.Points() {
		v.grid.setAt(p, value)
	}
}

// Apply rewrites every cell of the window as f(point, old value), in
// row-major order.
func (v *MutableView[T]) Apply(f func(geom.Point, T) T) {
	v.mustBeLive()
	for p := range v.region.Points() {
		v.grid.setAt(p, f(p, v.grid.at(p)))
	}
}
