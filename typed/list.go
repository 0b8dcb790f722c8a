// Package typed is the type-safe layer over the same growth policy as vec.
//
// With generics the element stride disappears: List[T] stores values of T
// directly, equality is value equality instead of raw representation
// comparison, and the garbage collector owns the backing storage, so there
// is no Close. The capacity contract is identical to vec: always a power
// of two (with the same quirk that requests of 2 or less yield 1),
// doubling on demand.
package typed

import (
	"errors"
	"fmt"

	"github.com/zkora/veckit/internal/buf"
)

// DefaultCapacity is the capacity of a List built by New.
const DefaultCapacity = 16

// ErrIndexRange indicates an index outside [0, Len()).
var ErrIndexRange = errors.New("typed: index out of range")

// List is a self-expanding sequence of T with explicit capacity management.
//
// The zero value is usable and behaves like a list with capacity 0 that
// allocates on first Push.
type List[T any] struct {
	// elems always has len equal to the allocated capacity; the valid
	// prefix is [0, length).
	elems  []T
	length int
}

// New returns an empty list with DefaultCapacity slots.
func New[T any]() *List[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty list with at least minCap slots,
// rounded with the same policy as vec.NewWithCapacity.
func NewWithCapacity[T any](minCap int) *List[T] {
	return &List[T]{elems: make([]T, buf.CapacityFor(minCap))}
}

// NewWithDefault returns a list holding count copies of def.
func NewWithDefault[T any](count int, def T) *List[T] {
	l := NewWithCapacity[T](count)
	for i := 0; i < count; i++ {
		l.Push(def)
	}
	return l
}

// Len returns the number of valid elements.
func (l *List[T]) Len() int { return l.length }

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int { return len(l.elems) }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// Push appends v, doubling capacity when full. Amortized O(1).
func (l *List[T]) Push(v T) {
	if l.length == len(l.elems) {
		next := make([]T, max(1, len(l.elems)*2))
		copy(next, l.elems)
		l.elems = next
	}
	l.elems[l.length] = v
	l.length++
}

// Get returns the element at index i, or ErrIndexRange.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.length {
		return zero, fmt.Errorf("typed: get %d of %d: %w", i, l.length, ErrIndexRange)
	}
	return l.elems[i], nil
}

// At is the unchecked accessor: indexes outside [0, Cap()) panic, and
// indexes in [Len(), Cap()) expose zero-value slots.
func (l *List[T]) At(i int) T { return l.elems[i] }

// Set overwrites the element at index i. It never changes Len.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= l.length {
		return fmt.Errorf("typed: set %d of %d: %w", i, l.length, ErrIndexRange)
	}
	l.elems[i] = v
	return nil
}

// Remove deletes the element at index i, shifting the suffix left to keep
// the valid prefix dense.
func (l *List[T]) Remove(i int) error {
	if i < 0 || i >= l.length {
		return fmt.Errorf("typed: remove %d of %d: %w", i, l.length, ErrIndexRange)
	}
	copy(l.elems[i:], l.elems[i+1:l.length])
	l.length--
	var zero T
	l.elems[l.length] = zero // release references held past the prefix
	return nil
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, fmt.Errorf("typed: pop of empty list: %w", ErrIndexRange)
	}
	v := l.elems[l.length-1]
	l.elems[l.length-1] = zero
	l.length--
	return v, nil
}

// Swap exchanges the elements at indexes i and j. Equal indexes are a
// no-op.
func (l *List[T]) Swap(i, j int) error {
	if i < 0 || i >= l.length {
		return fmt.Errorf("typed: swap %d of %d: %w", i, l.length, ErrIndexRange)
	}
	if j < 0 || j >= l.length {
		return fmt.Errorf("typed: swap %d of %d: %w", j, l.length, ErrIndexRange)
	}
	l.elems[i], l.elems[j] = l.elems[j], l.elems[i]
	return nil
}

// SortFunc orders the elements in place by a three-way comparator, using
// the same selection sort as the raw layer.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	for i := 0; i < l.length-1; i++ {
		min := i
		for j := i + 1; j < l.length; j++ {
			if cmp(l.elems[min], l.elems[j]) > 0 {
				min = j
			}
		}
		if min != i {
			l.elems[i], l.elems[min] = l.elems[min], l.elems[i]
		}
	}
}

// Grow reallocates to hold at least newCap slots (rounded up to a power of
// two). Targets at or below the current capacity are a no-op.
func (l *List[T]) Grow(newCap int) {
	capacity := buf.RoundPow2(newCap)
	if capacity <= len(l.elems) {
		return
	}
	next := make([]T, capacity)
	copy(next, l.elems[:l.length])
	l.elems = next
}

// Clone returns an independent deep copy with the same length and
// capacity.
func (l *List[T]) Clone() *List[T] {
	elems := make([]T, len(l.elems))
	copy(elems, l.elems[:l.length])
	return &List[T]{elems: elems, length: l.length}
}

// Slice returns a view of the valid prefix. The view aliases the list's
// storage and is invalidated by growth.
func (l *List[T]) Slice() []T { return l.elems[:l.length:l.length] }

// IndexOf returns the lowest index holding v, or -1. Unlike the raw layer
// this is value equality, so padding and pointer representation do not
// leak into the result.
func IndexOf[T comparable](l *List[T], v T) int {
	for i := 0; i < l.length; i++ {
		if l.elems[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds v.
func Contains[T comparable](l *List[T], v T) bool {
	return IndexOf(l, v) >= 0
}

// AnyShared reports whether a and b hold any equal element. O(n*m); the
// type system rules out the stride-mismatch failure mode of the raw layer.
func AnyShared[T comparable](a, b *List[T]) bool {
	for i := 0; i < a.length; i++ {
		for j := 0; j < b.length; j++ {
			if a.elems[i] == b.elems[j] {
				return true
			}
		}
	}
	return false
}
