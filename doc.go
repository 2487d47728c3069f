// Package grid2d is your in-memory toolkit for dense two-dimensional
// grids that live in an unbounded signed coordinate space — tile maps,
// height fields, paint buffers and other texture-adjacent data that must
// grow, shrink and shift origin without reinterpreting stored cells.
//
// 🚀 What is grid2d?
//
//	A generics-based library built around three ideas:
//		• Regions: axis-aligned signed rectangles, min inclusive / max exclusive
//		• Grids: an owned row-major buffer positioned by a Region, with an
//		  explicit per-grid default value for newly exposed cells
//		• Views: non-owning read-only or exclusive-write windows onto a grid
//
// ✨ Why choose grid2d?
//
//   - Geometric resize – cells keep their world coordinates, never their
//     raw buffer offsets
//   - Three combination operators – Zip (exact match), Paint (discarding
//     overlay) and Merge (growing overlay)
//   - Foreign-type friendly – anything point- or rectangle-shaped plugs in
//     through the PointLike / RegionLike capability interfaces
//   - Checked aliasing – exclusive views are guarded by a runtime
//     region-lock, so read/write overlap is caught at construction
//
// Everything is organized under three subpackages:
//
//	geom/  — Point, Region, iteration and the PointLike/RegionLike contracts
//	grid/  — Grid, View, MutableView, resize and the combination operators
//	adapt/ — glue for image.Point, image.Rectangle and gonum r2 vectors
//
// Quick ASCII example:
//
//	    A: [0,0)..[2,2) of 1        merge(A, B, +):
//	    B: [1,1)..[3,3) of 2
//	      1 1 .                       1 1 0
//	      1 1 .          ──────▶      1 3 2
//	      . 2 2                       0 2 2
//
// Dive into examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/grid2d
package grid2d
