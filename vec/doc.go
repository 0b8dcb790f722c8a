// Package vec implements a type-erased, self-expanding contiguous vector.
//
// # Overview
//
// A Vector stores elements of one fixed byte size (the stride) in a single
// contiguous block. It never interprets the bytes it stores: equality is
// raw byte comparison and ordering comes from a caller-supplied comparator.
// Capacity is always a power of two and doubles on demand, giving
// amortized O(1) PushBack.
//
// # Construction
//
//	v, err := vec.New(4)                    // stride 4, capacity 16
//	v, err := vec.NewWithCapacity(4, 100)   // capacity 128
//	v, err := vec.NewIn(arena.NewMapped(), 4, 100)
//
// The capacity rounding has one deliberate quirk: requests of 2 or less
// yield capacity 1 (see internal rounding notes). Storage starts zeroed.
//
// # Access policy
//
// Get, Set, Remove and Swap validate indexes and return ErrIndexRange on
// misuse; this is the default, safe surface. Elem is the unchecked fast
// path: it performs no length check, and an out-of-range index is the
// caller's bug.
//
// # View invalidation
//
// Slices returned by Get and Elem point into the vector's storage. Any
// operation that can reallocate (PushBack, Grow, Close) invalidates them;
// on the mapped arena a stale view may reference unmapped pages. Use Value
// to obtain a copy that is safe to retain.
//
// # Errors
//
// Every operation that can allocate returns an error instead of
// terminating the process on allocation failure. Sentinel errors are
// matched with errors.Is.
//
// # Thread Safety
//
// Vectors are not thread-safe. A vector has one logical owner at a time;
// callers needing concurrent access must synchronize externally.
//
// # Related Packages
//
//   - github.com/zkora/veckit/arena: storage backends (heap, anonymous mmap)
//   - github.com/zkora/veckit/typed: generic, type-safe layer over the same
//     growth policy
package vec
