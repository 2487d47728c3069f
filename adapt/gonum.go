package adapt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// R2Vec adapts gonum's r2.Vec to geom.PointLike by rounding each
// component to the nearest integer cell, halves away from zero.
type R2Vec r2.Vec

// XY returns the rounded integer coordinates.
func (v R2Vec) XY() (int, int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
