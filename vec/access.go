package vec

import "fmt"

// Get returns a view of the element at index i. The view aliases the
// vector's storage and is invalidated by any operation that can
// reallocate; see Value for a stable copy.
func (v *Vector) Get(i int) ([]byte, error) {
	if v.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= v.length {
		return nil, fmt.Errorf("vec: get %d of %d: %w", i, v.length, ErrIndexRange)
	}
	return v.Elem(i), nil
}

// Value returns a copy of the element at index i. The copy is safe to
// retain across mutating calls.
func (v *Vector) Value(i int) ([]byte, error) {
	view, err := v.Get(i)
	if err != nil {
		return nil, err
	}
	out := make([]byte, v.stride)
	copy(out, view)
	return out, nil
}

// Set overwrites the element at index i with elem. It never changes Len.
func (v *Vector) Set(i int, elem []byte) error {
	if v.closed {
		return ErrClosed
	}
	if i < 0 || i >= v.length {
		return fmt.Errorf("vec: set %d of %d: %w", i, v.length, ErrIndexRange)
	}
	if len(elem) != v.stride {
		return fmt.Errorf("vec: set %d bytes with stride %d: %w", len(elem), v.stride, ErrStrideMismatch)
	}
	copy(v.Elem(i), elem)
	return nil
}

// Elem is the unchecked accessor: it returns the storage slot for index i
// with no length validation. Indexes in [Len(), Cap()) expose the
// unspecified tail; indexes outside [0, Cap()) panic. The returned slice
// aliases storage and is invalidated by reallocation. Callers wanting the
// checked contract use Get.
func (v *Vector) Elem(i int) []byte {
	off := i * v.stride
	return v.data[off : off+v.stride : off+v.stride]
}
