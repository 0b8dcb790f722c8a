package vec

import (
	"fmt"

	"github.com/zkora/veckit/arena"
	"github.com/zkora/veckit/internal/buf"
)

// DefaultCapacity is the capacity of a Vector built by New.
const DefaultCapacity = 16

// Vector is a self-expanding contiguous sequence of fixed-stride elements.
//
// The zero value is not usable; construct with New, NewWithCapacity,
// NewWithDefault or NewIn.
type Vector struct {
	src arena.Arena

	// data is the backing block, always exactly capacity*stride bytes.
	// Elements occupy the dense prefix [0, length); the tail is
	// unspecified.
	data []byte

	stride   int
	length   int
	capacity int

	closed bool
}

// New creates an empty vector for elements of stride bytes with
// DefaultCapacity slots.
func New(stride int) (*Vector, error) {
	return NewWithCapacity(stride, DefaultCapacity)
}

// NewWithCapacity creates an empty vector with at least minCap slots.
// The allocated capacity is the next power of two, except that requests of
// 2 or less yield capacity 1. Storage is zero-initialized.
func NewWithCapacity(stride, minCap int) (*Vector, error) {
	return NewIn(arena.Heap{}, stride, minCap)
}

// NewWithDefault creates a vector holding count copies of def, appended
// through the regular push path so growth behaves exactly as repeated
// PushBack calls would.
func NewWithDefault(stride, count int, def []byte) (*Vector, error) {
	if count < 0 {
		return nil, fmt.Errorf("vec: default count %d: %w", count, ErrBadCapacity)
	}
	v, err := NewWithCapacity(stride, count)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		if err := v.PushBack(def); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

// NewIn creates an empty vector whose storage comes from the given arena.
func NewIn(src arena.Arena, stride, minCap int) (*Vector, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("vec: stride %d: %w", stride, ErrBadStride)
	}
	if minCap < 0 {
		return nil, fmt.Errorf("vec: capacity %d: %w", minCap, ErrBadCapacity)
	}
	capacity := buf.CapacityFor(minCap)
	size, ok := buf.MulOverflowSafe(capacity, stride)
	if !ok {
		return nil, fmt.Errorf("vec: capacity %d * stride %d: %w", capacity, stride, ErrBadCapacity)
	}
	data, err := src.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("vec: alloc: %w", err)
	}
	return &Vector{
		src:      src,
		data:     data,
		stride:   stride,
		capacity: capacity,
	}, nil
}

// Clone returns an independent deep copy: same stride, length and capacity,
// byte-identical elements over [0, Len()). The clone's tail is zeroed, not
// copied. Mutating either vector never affects the other.
func (v *Vector) Clone() (*Vector, error) {
	if v.closed {
		return nil, ErrClosed
	}
	data, err := v.src.Alloc(len(v.data))
	if err != nil {
		return nil, fmt.Errorf("vec: clone alloc: %w", err)
	}
	copy(data, v.data[:v.length*v.stride])
	return &Vector{
		src:      v.src,
		data:     data,
		stride:   v.stride,
		length:   v.length,
		capacity: v.capacity,
	}, nil
}

// Len returns the number of valid elements.
func (v *Vector) Len() int { return v.length }

// Cap returns the number of slots backed by allocated storage.
func (v *Vector) Cap() int { return v.capacity }

// Stride returns the byte width of one element.
func (v *Vector) Stride() int { return v.stride }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector) IsEmpty() bool { return v.length == 0 }

// Grow reallocates storage to hold newCap slots (rounded up to a power of
// two), preserving all element bytes. Targets below the current capacity
// return ErrShrink. On allocation failure the vector is left unchanged and
// the arena's error is returned.
func (v *Vector) Grow(newCap int) error {
	if v.closed {
		return ErrClosed
	}
	if newCap < v.capacity {
		return fmt.Errorf("vec: grow %d -> %d: %w", v.capacity, newCap, ErrShrink)
	}
	capacity := buf.RoundPow2(newCap)
	if capacity == v.capacity {
		return nil
	}
	size, ok := buf.MulOverflowSafe(capacity, v.stride)
	if !ok {
		return fmt.Errorf("vec: capacity %d * stride %d: %w", capacity, v.stride, ErrBadCapacity)
	}
	data, err := v.src.Realloc(v.data, size)
	if err != nil {
		return fmt.Errorf("vec: grow to %d: %w", capacity, err)
	}
	v.data = data
	v.capacity = capacity
	return nil
}

// Close releases the backing storage. The vector must not be used
// afterwards; every subsequent operation returns ErrClosed. Close is
// idempotent.
func (v *Vector) Close() error {
	if v.closed {
		return nil
	}
	err := v.src.Release(v.data)
	v.closed = true
	v.data = nil
	v.length = 0
	v.capacity = 0
	if err != nil {
		return fmt.Errorf("vec: release: %w", err)
	}
	return nil
}
