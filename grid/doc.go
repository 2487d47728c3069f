// Package grid implements the owned dense 2D container, its non-owning
// views, geometric resize and the three region-based combination
// operators.
//
// What:
//
//   - Grid[T] owns a row-major buffer positioned in world space by a
//     geom.Region, together with an explicit default value used to fill
//     cells newly exposed by resize, Insert, Extend and Merge.
//   - View[T] and MutableView[T] are non-owning windows over a sub-region
//     of a parent grid, read-only and exclusive-write respectively.
//   - Zip, Paint and Merge combine two grid-likes cell-wise under three
//     distinct overflow policies: exact region match, overlay with
//     discard, and overlay with union growth.
//
// Why:
//
//   - Resize is geometric: every copied cell is derived from its world
//     coordinate, never from its raw buffer offset, so a grid can grow,
//     shrink and shift origin without reinterpreting stored data.
//   - The element type is fully generic, so no intrinsic zero value can be
//     assumed; the default value is a construction parameter.
//
// Complexity:
//
//   - Get, Fetch, Set, Contains: O(1).
//   - Resize, Zip, Paint, Merge, PaintAt: O(area of the relevant regions).
//
// Errors:
//
//   - ErrOutOfBounds: a point or strict region argument is not contained
//     in the target's region. Only Slice clips; Get and View never do.
//   - ErrShortBuffer: FromSlice given fewer elements than the region holds.
//   - ErrRegionMismatch: Zip invoked over operands with unequal regions.
//   - ErrAliasingViolation: panic value raised when an exclusive view
//     would overlap a live view, or a grid is resized under live views.
//
// Aliasing contract: a grid may carry any number of live read-only views,
// but a MutableView's region must not overlap any other live view, read
// or write. The contract is enforced at view construction time by a
// runtime region-lock; Release frees a view's lock and must run on every
// exit path, typically via defer. Violations are programming errors and
// panic rather than returning an error.
package grid
