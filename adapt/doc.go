// Package adapt wraps foreign point and rectangle types so they satisfy
// the geom.PointLike and geom.RegionLike capability interfaces.
//
// What:
//
//   - ImagePoint / ImageRect: the standard library's image.Point and
//     image.Rectangle. Both models agree on min-inclusive, max-exclusive
//     rectangles, so the conversion is positional only.
//   - R2Vec: gonum's spatial/r2.Vec, a float64 math vector, rounded to the
//     nearest integer cell.
//
// Why:
//
//   - Engine and image-processing code already speaks its own vector and
//     rectangle dialects; one conversion method per type lets those values
//     flow straight into Get, Slice, Resize and construction without the
//     core knowing any of them.
//
// This layer is trivial glue: no container invariant lives here.
package adapt
