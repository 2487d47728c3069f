// Package geom defines the coordinate primitives every grid2d container
// is addressed by: signed integer points and axis-aligned regions.
//
// What:
//
//   - Point is a signed 2D integer coordinate in an unbounded plane.
//   - Region is a rectangle with inclusive Min and exclusive Max; a Region
//     whose Min equals Max on an axis is a valid, empty Region.
//   - PointLike and RegionLike are the capability interfaces through which
//     foreign point and rectangle types enter the library.
//
// Why:
//
//   - Every indexing, slicing and resize request in grid2d is first reduced
//     to a canonical Region; keeping that reduction in one leaf package
//     keeps the container invariants out of the adapter glue.
//   - Empty Regions are first-class values, never errors: intersection may
//     legitimately produce them and iteration over them simply yields
//     nothing.
//
// Complexity:
//
//   - All Region operations (Intersect, Union, Contains, Index): O(1).
//   - Points iteration: O(Area), lazy and restartable.
//
// Errors:
//
//   - ErrInvalidRegion: MinMax called with min exceeding max on an axis.
//
// Construction forms accepted as RegionLike: a Region itself, Size{W,H}
// for the conventional [0,0)..[W,H) rectangle, and Ranges{X0,X1,Y0,Y1}
// for per-axis half-open spans. Between builds the normalized rectangle
// spanned by two PointLike endpoints.
package geom
