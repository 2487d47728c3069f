package adapt_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/grid2d/adapt"
	"github.com/katalvlaran/grid2d/geom"
	"github.com/katalvlaran/grid2d/grid"
)

// TestImagePoint verifies image points address grids directly.
func TestImagePoint(t *testing.T) {
	g := grid.Generate(geom.Size{W: 3, H: 3}, 0, func(p geom.Point) int { return p.Y*3 + p.X })

	v, err := g.Get(adapt.ImagePoint(image.Pt(2, 1)))
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

// TestImageRect verifies rectangle conversion, including canonicalization
// of flipped corners.
func TestImageRect(t *testing.T) {
	r := adapt.ImageRect(image.Rect(1, 2, 4, 6))
	require.Equal(t, geom.Region{Min: geom.Pt(1, 2), Max: geom.Pt(4, 6)}, geom.RegionOf(r))

	// image.Rect already canonicalizes, so feed a raw Rectangle value.
	flipped := adapt.ImageRect(image.Rectangle{Min: image.Pt(4, 6), Max: image.Pt(1, 2)})
	require.Equal(t, geom.Region{Min: geom.Pt(1, 2), Max: geom.Pt(4, 6)}, geom.RegionOf(flipped))
}

// TestImageRect_AsRegionLike verifies the adapter flows through grid
// construction and slicing.
func TestImageRect_AsRegionLike(t *testing.T) {
	g := grid.New(adapt.ImageRect(image.Rect(0, 0, 4, 4)), 0)
	require.Equal(t, geom.Rect(4, 4), g.Region())

	v := g.Slice(adapt.ImageRect(image.Rect(2, 2, 6, 6)))
	defer v.Release()
	require.Equal(t, geom.Between(geom.Pt(2, 2), geom.Pt(4, 4)), v.Region())
}

// TestR2Vec verifies rounding of gonum vectors to integer cells.
func TestR2Vec(t *testing.T) {
	cases := []struct {
		name string
		vec  r2.Vec
		want geom.Point
	}{
		{"Exact", r2.Vec{X: 2, Y: 3}, geom.Pt(2, 3)},
		{"RoundsDown", r2.Vec{X: 2.4, Y: 3.2}, geom.Pt(2, 3)},
		{"RoundsUp", r2.Vec{X: 2.6, Y: 3.5}, geom.Pt(3, 4)},
		{"NegativeHalfAwayFromZero", r2.Vec{X: -1.5, Y: -0.4}, geom.Pt(-2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geom.PointOf(adapt.R2Vec(tc.vec)))
		})
	}
}
