package grid

import (
	"fmt"

	"github.com/katalvlaran/grid2d/geom"
)

// mustGet reads a point the caller has proven to be contained in src.
func mustGet[T any](src Source[T], p geom.Point) T {
	v, err := src.Get(p)
	if err != nil {
		panic(err)
	}
	return v
}

// Zip combines two operands with identical regions cell by cell:
// R[p] = f(A[p], B[p]) for every point p, with R.Region() == A.Region().
// Returns ErrRegionMismatch unless the regions are exactly equal — Zip
// never clips or grows. def becomes the result grid's default value,
// since the result element type carries no intrinsic zero.
// Complexity: O(Area).
func Zip[A, B, R any](a Source[A], b Source[B], def R, f func(A, B) R) (*Grid[R], error) {
	if a.Region() != b.Region() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrRegionMismatch, a.Region(), b.Region())
	}
	out := New(a.Region(), def)
	for p := range a.Region().Points() {
		out.setAt(p, f(mustGet(a, p), mustGet(b, p)))
	}
	return out, nil
}

// Paint overlays b onto a with overflow discarded: the result covers
// exactly a's region, overlap cells become f(A[p], B[p]), the rest copy
// from a, and cells of b outside a's region never appear — the caller
// declared they do not care. The result inherits a's default value.
// Complexity: O(a's Area).
func Paint[T, U any](a Source[T], b Source[U], f func(T, U) T) *Grid[T] {
	out := Generate(a.Region(), a.Default(), func(p geom.Point) T {
		return mustGet(a, p)
	})
	for p := range a.Region().Intersect(b.Region()).Points() {
		out.setAt(p, f(mustGet(a, p), mustGet(b, p)))
	}
	return out
}

// Merge is the overflow-preserving counterpart of Paint: the result
// covers the union of both regions, so no data from either operand is
// lost. Overlap cells become f(A[p], B[p]), cells owned by only one
// operand copy from it, and union cells owned by neither take the
// default. The result inherits a's default value.
// Complexity: O(union Area).
func Merge[T any](a, b Source[T], f func(T, T) T) *Grid[T] {
	out := New(a.Region().Union(b.Region()), a.Default())
	for p := range out.Region().Points() {
		inA, inB := a.Region().Contains(p), b.Region().Contains(p)
		switch {
		case inA && inB:
			out.setAt(p, f(mustGet(a, p), mustGet(b, p)))
		case inA:
			out.setAt(p, mustGet(a, p))
		case inB:
			out.setAt(p, mustGet(b, p))
		}
	}
	return out
}

// PaintAt applies brush to dst in place, with the brush's region
// translated by at. Only the intersection with dst's region is touched;
// the brush's overflow is discarded. Each affected cell becomes
// f(old, brush value). Complexity: O(intersection Area).
func PaintAt[T, U any](dst *Grid[T], brush Source[U], at geom.PointLike, f func(T, U) T) {
	offset := geom.PointOf(at)
	target := brush.Region().Translate(offset)
	for p := range dst.Region().Intersect(target).Points() {
		dst.setAt(p, f(dst.at(p), mustGet(brush, p.Sub(offset))))
	}
}

// Equal reports whether two operands cover the same region and hold the
// same value at every point.
func Equal[T comparable](a, b Source[T]) bool {
	if a.Region() != b.Region() {
		return false
	}
	for p := range a.Region().Points() {
		if mustGet(a, p) != mustGet(b, p) {
			return false
		}
	}
	return true
}

// Equivalent reports whether two operands have the same extent and the
// same cell data, ignoring where their regions sit in world space.
func Equivalent[T comparable](a, b Source[T]) bool {
	ra, rb := a.Region(), b.Region()
	if ra.Width() != rb.Width() || ra.Height() != rb.Height() {
		return false
	}
	shift := rb.Min.Sub(ra.Min)
	for p := range ra.Points() {
		if mustGet(a, p) != mustGet(b, p.Add(shift)) {
			return false
		}
	}
	return true
}
