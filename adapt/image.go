package adapt

import (
	"image"

	"github.com/katalvlaran/grid2d/geom"
)

// ImagePoint adapts image.Point to geom.PointLike.
type ImagePoint image.Point

// XY returns the point's coordinates.
func (p ImagePoint) XY() (int, int) {
	return p.X, p.Y
}

// ImageRect adapts image.Rectangle to geom.RegionLike. Non-canonical
// rectangles are normalized first, matching image's own convention.
type ImageRect image.Rectangle

// Bounds returns the rectangle as a canonical region. image.Rectangle is
// already min-inclusive, max-exclusive, so coordinates carry over as-is.
func (r ImageRect) Bounds() geom.Region {
	c := image.Rectangle(r).Canon()
	return geom.Region{
		Min: geom.Pt(c.Min.X, c.Min.Y),
		Max: geom.Pt(c.Max.X, c.Max.Y),
	}
}
