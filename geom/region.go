package geom

import (
	"fmt"
	"iter"
)

// Region is an axis-aligned rectangle of integer cells: Min is inclusive,
// Max is exclusive. Min never exceeds Max on either axis; a Region with
// Min == Max on an axis is valid and empty. Regions are immutable values,
// derived only by construction, intersection or union.
type Region struct {
	Min, Max Point
}

// MinMax constructs a Region from an inclusive minimum and an exclusive
// maximum. Returns ErrInvalidRegion if min exceeds max on either axis.
// Complexity: O(1).
func MinMax(min, max Point) (Region, error) {
	if min.X > max.X || min.Y > max.Y {
		return Region{}, fmt.Errorf("%w: min %v, max %v", ErrInvalidRegion, min, max)
	}
	return Region{Min: min, Max: max}, nil
}

// Rect returns the conventional rectangle [0,0)..[w,h). Negative extents
// clamp to zero.
func Rect(w, h int) Region {
	return Region{Max: Point{X: max(w, 0), Y: max(h, 0)}}
}

// Between returns the normalized rectangle spanned by two endpoints:
// componentwise minimum to componentwise maximum, max exclusive. Total —
// endpoint order does not matter.
func Between(a, b PointLike) Region {
	pa, pb := PointOf(a), PointOf(b)
	return Region{Min: minPt(pa, pb), Max: maxPt(pa, pb)}
}

// Bounds returns the region itself; Region is its own RegionLike.
func (r Region) Bounds() Region {
	return r
}

// Width returns Max.X - Min.X.
func (r Region) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y.
func (r Region) Height() int {
	return r.Max.Y - r.Min.Y
}

// Area returns Width*Height, the number of cells in the region.
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// IsEmpty reports whether the region contains no cells.
func (r Region) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether Min <= p < Max componentwise.
// Complexity: O(1).
func (r Region) Contains(pl PointLike) bool {
	p := PointOf(pl)
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// ContainsRegion reports whether every cell of s lies inside r. Empty
// sub-regions are contained everywhere.
func (r Region) ContainsRegion(s Region) bool {
	if s.IsEmpty() {
		return true
	}
	return s.Min.X >= r.Min.X && s.Min.Y >= r.Min.Y && s.Max.X <= r.Max.X && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest region contained in both r and s:
// componentwise maximum of the minimums, minimum of the maximums. The
// result may be empty — empty is a first-class value, never an error.
// When the operands are disjoint on an axis the result is canonicalized
// by clamping Max to Min on that axis.
// Complexity: O(1).
func (r Region) Intersect(s Region) Region {
	out := Region{Min: maxPt(r.Min, s.Min), Max: minPt(r.Max, s.Max)}
	out.Max = maxPt(out.Max, out.Min)
	return out
}

// Union returns the smallest rectangle enclosing both r and s:
// componentwise minimum of the minimums, maximum of the maximums.
// Complexity: O(1).
func (r Region) Union(s Region) Region {
	return Region{Min: minPt(r.Min, s.Min), Max: maxPt(r.Max, s.Max)}
}

// Translate returns the region moved by the given offset; extent is
// unchanged.
func (r Region) Translate(by Point) Region {
	return Region{Min: r.Min.Add(by), Max: r.Max.Add(by)}
}

// Expand grows the region by the given amount on every side, so expanding
// [0,0)..[1,1) by (2,1) yields [-2,-1)..[3,2). Negative amounts shrink;
// a shrink past empty clamps Max to Min.
func (r Region) Expand(by Point) Region {
	out := Region{Min: r.Min.Sub(by), Max: r.Max.Add(by)}
	out.Max = maxPt(out.Max, out.Min)
	return out
}

// Index maps a contained point to its row-major offset
// (p.Y-Min.Y)*Width + (p.X-Min.X). The caller guarantees containment.
func (r Region) Index(p Point) int {
	return (p.Y-r.Min.Y)*r.Width() + (p.X - r.Min.X)
}

// Points yields every integer point of the region in row-major order:
// y outer ascending, x inner ascending. The sequence is lazy, finite and
// restartable; an empty region yields nothing.
// Complexity: O(Area).
func (r Region) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// String renders the region as "[min..max)".
func (r Region) String() string {
	return fmt.Sprintf("[%v..%v)", r.Min, r.Max)
}
