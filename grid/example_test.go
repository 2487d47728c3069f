package grid_test

import (
	"fmt"

	"github.com/katalvlaran/grid2d/geom"
	"github.com/katalvlaran/grid2d/grid"
)

// ExampleMerge demonstrates the overflow-preserving overlay: two tile
// layers with different footprints combine into a grid covering both,
// with untouched corners taking the default value.
//
// Layer A covers [0,0)..[2,2) with 1s, layer B covers [1,1)..[3,3) with
// 2s; the overlap cell adds to 3.
func ExampleMerge() {
	a := grid.New(geom.Between(geom.Pt(0, 0), geom.Pt(2, 2)), 0)
	a.Fill(1)
	b := grid.New(geom.Between(geom.Pt(1, 1), geom.Pt(3, 3)), 0)
	b.Fill(2)

	m := grid.Merge(a, b, func(x, y int) int { return x + y })
	fmt.Println("region:", m.Region())
	for row := range m.Rows() {
		fmt.Println(row)
	}
	// Output:
	// region: [(0,0)..(3,3))
	// [1 1 0]
	// [1 3 2]
	// [0 2 2]
}

// ExamplePaint demonstrates the discarding overlay: the result keeps the
// first operand's footprint and the second operand's overflow vanishes.
func ExamplePaint() {
	a := grid.New(geom.Between(geom.Pt(0, 0), geom.Pt(2, 2)), 0)
	a.Fill(1)
	b := grid.New(geom.Between(geom.Pt(1, 1), geom.Pt(3, 3)), 0)
	b.Fill(2)

	p := grid.Paint(a, b, func(x, y int) int { return x + y })
	fmt.Println("region:", p.Region())
	for row := range p.Rows() {
		fmt.Println(row)
	}
	// Output:
	// region: [(0,0)..(2,2))
	// [1 1]
	// [1 3]
}

// ExampleGrid_Resize demonstrates geometric resize: the surviving column
// keeps its world position while new cells take the default.
func ExampleGrid_Resize() {
	g := grid.Generate(geom.Ranges{X0: 0, X1: 1, Y0: 0, Y1: 3}, 0,
		func(p geom.Point) int { return p.Y + 1 })

	g.Resize(geom.Ranges{X0: -1, X1: 2, Y0: 0, Y1: 3})
	for row := range g.Rows() {
		fmt.Println(row)
	}
	// Output:
	// [0 1 0]
	// [0 2 0]
	// [0 3 0]
}

// ExampleGrid_Mutable demonstrates the exclusive-write window with its
// deterministic release.
func ExampleGrid_Mutable() {
	g := grid.New(geom.Size{W: 3, H: 3}, '.')

	w, err := g.Mutable(geom.Between(geom.Pt(1, 1), geom.Pt(3, 3)))
	if err != nil {
		panic(err)
	}
	w.Fill('#')
	w.Release()

	for row := range g.Rows() {
		fmt.Println(string(row))
	}
	// Output:
	// ...
	// .##
	// .##
}
