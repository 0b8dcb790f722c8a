// Package arena provides the storage backends a Vector allocates from.
//
// # Overview
//
// A Vector owns exactly one contiguous byte block at a time. Where that
// block lives is the arena's business: the default Heap arena hands out
// ordinary garbage-collected slices, while the mapped arena (NewMapped)
// hands out anonymous page-aligned memory mappings on unix platforms.
//
// # Arena Interface
//
//   - Alloc(n): obtain a zeroed block of exactly n bytes
//   - Realloc(b, n): obtain a block of n bytes preserving the prefix of b
//   - Release(b): return a block to the arena
//
// Allocation failure is an ordinary error return. Arenas never terminate
// the process; the caller decides whether to abort, retry, or degrade.
//
// # Thread Safety
//
// Arenas are not safe for concurrent use. Callers must synchronize
// externally, the same as for the Vectors allocating from them.
package arena

import "errors"

// ErrForeign indicates a Release or Realloc of a block this arena did not hand out.
var ErrForeign = errors.New("arena: block was not allocated from this arena")

// Arena is a source of contiguous byte blocks.
type Arena interface {
	// Alloc returns a zeroed block of exactly n bytes.
	Alloc(n int) ([]byte, error)

	// Realloc returns a block of exactly n bytes whose prefix holds the
	// first min(len(b), n) bytes of b. The block b must not be used after
	// Realloc returns; the result may or may not alias it. Any bytes past
	// the preserved prefix are zeroed.
	Realloc(b []byte, n int) ([]byte, error)

	// Release returns a block obtained from Alloc or Realloc. The block
	// must not be used afterwards. Releasing a nil or empty block is a
	// no-op.
	Release(b []byte) error
}

// Heap is the default arena: blocks are plain Go slices owned by the
// garbage collector. Release is a no-op.
type Heap struct{}

// Alloc returns a zeroed slice of n bytes.
func (Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("arena: negative size")
	}
	return make([]byte, n), nil
}

// Realloc grows or shrinks b to n bytes, copying the preserved prefix.
func (Heap) Realloc(b []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.New("arena: negative size")
	}
	next := make([]byte, n)
	copy(next, b)
	return next, nil
}

// Release lets the garbage collector reclaim b.
func (Heap) Release([]byte) error { return nil }
