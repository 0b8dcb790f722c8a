package vec

import (
	"bytes"
	"fmt"
)

// IndexOf returns the lowest index whose element's raw bytes equal elem, or
// -1 when no element matches. Equality is byte-wise only: element types
// containing padding or pointers compare by representation, not by value.
func (v *Vector) IndexOf(elem []byte) (int, error) {
	if v.closed {
		return -1, ErrClosed
	}
	if len(elem) != v.stride {
		return -1, fmt.Errorf("vec: query of %d bytes with stride %d: %w", len(elem), v.stride, ErrStrideMismatch)
	}
	for i := 0; i < v.length; i++ {
		if bytes.Equal(v.Elem(i), elem) {
			return i, nil
		}
	}
	return -1, nil
}

// Contains reports whether any element's bytes equal elem.
func (v *Vector) Contains(elem []byte) (bool, error) {
	i, err := v.IndexOf(elem)
	return i >= 0, err
}

// AnyShared reports whether any element of a is byte-equal to any element
// of b. Vectors with differing strides are incomparable and return
// ErrStrideMismatch. O(n*m).
func AnyShared(a, b *Vector) (bool, error) {
	if a.closed || b.closed {
		return false, ErrClosed
	}
	if a.stride != b.stride {
		return false, fmt.Errorf("vec: strides %d and %d: %w", a.stride, b.stride, ErrStrideMismatch)
	}
	for i := 0; i < a.length; i++ {
		for j := 0; j < b.length; j++ {
			if bytes.Equal(a.Elem(i), b.Elem(j)) {
				return true, nil
			}
		}
	}
	return false, nil
}
