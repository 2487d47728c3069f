package geom

// PointLike is any value convertible to a canonical Point. It is the
// single capability the library requires of foreign point and vector
// types; see package adapt for ready-made wrappers.
type PointLike interface {
	// XY returns the signed integer coordinates of the point.
	XY() (x, y int)
}

// RegionLike is any value convertible to a canonical Region. Region,
// Size and Ranges implement it; see package adapt for foreign rectangle
// wrappers.
type RegionLike interface {
	// Bounds returns the canonical min-inclusive, max-exclusive region.
	Bounds() Region
}

// PointOf resolves any PointLike to its canonical Point.
func PointOf(pl PointLike) Point {
	x, y := pl.XY()
	return Point{X: x, Y: y}
}

// RegionOf resolves any RegionLike to its canonical Region.
func RegionOf(rl RegionLike) Region {
	return rl.Bounds()
}

// Size is the [w,h] RegionLike form: the rectangle [0,0)..[W,H).
// Negative extents clamp to zero.
type Size struct {
	W, H int
}

// Bounds returns [0,0)..[W,H).
func (s Size) Bounds() Region {
	return Rect(s.W, s.H)
}

// Ranges is the per-axis RegionLike form: x in [X0,X1), y in [Y0,Y1),
// both half-open. An inverted axis clamps to empty at its start.
type Ranges struct {
	X0, X1, Y0, Y1 int
}

// Bounds returns the region spanned by the two half-open ranges.
func (r Ranges) Bounds() Region {
	out := Region{
		Min: Point{X: r.X0, Y: r.Y0},
		Max: Point{X: r.X1, Y: r.Y1},
	}
	out.Max = maxPt(out.Max, out.Min)
	return out
}
