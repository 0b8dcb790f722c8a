package vec

import "fmt"

// PushBack appends elem, doubling capacity first when the vector is full.
// Amortized O(1).
func (v *Vector) PushBack(elem []byte) error {
	if v.closed {
		return ErrClosed
	}
	if len(elem) != v.stride {
		return fmt.Errorf("vec: push %d bytes with stride %d: %w", len(elem), v.stride, ErrStrideMismatch)
	}
	if v.length == v.capacity {
		if err := v.Grow(v.capacity * 2); err != nil {
			return err
		}
	}
	copy(v.Elem(v.length), elem)
	v.length++
	return nil
}

// Remove deletes the element at index i, shifting every element after it
// one slot left so the valid prefix stays dense. O(n) in the shifted
// suffix. Removing the last index degenerates to a pop.
func (v *Vector) Remove(i int) error {
	if v.closed {
		return ErrClosed
	}
	if i < 0 || i >= v.length {
		return fmt.Errorf("vec: remove %d of %d: %w", i, v.length, ErrIndexRange)
	}
	s := v.stride
	copy(v.data[i*s:], v.data[(i+1)*s:v.length*s])
	v.length--
	return nil
}

// Pop removes the last element and returns a copy of it.
func (v *Vector) Pop() ([]byte, error) {
	if v.closed {
		return nil, ErrClosed
	}
	if v.length == 0 {
		return nil, fmt.Errorf("vec: pop of empty vector: %w", ErrIndexRange)
	}
	out, err := v.Value(v.length - 1)
	if err != nil {
		return nil, err
	}
	v.length--
	return out, nil
}

// Swap exchanges the elements at indexes i and j. Equal indexes are a
// no-op.
func (v *Vector) Swap(i, j int) error {
	if v.closed {
		return ErrClosed
	}
	if i < 0 || i >= v.length {
		return fmt.Errorf("vec: swap %d of %d: %w", i, v.length, ErrIndexRange)
	}
	if j < 0 || j >= v.length {
		return fmt.Errorf("vec: swap %d of %d: %w", j, v.length, ErrIndexRange)
	}
	if i != j {
		v.swap(i, j)
	}
	return nil
}

// swap exchanges two slots through a temporary buffer. Indexes must be
// valid.
func (v *Vector) swap(i, j int) {
	tmp := make([]byte, v.stride)
	copy(tmp, v.Elem(i))
	copy(v.Elem(i), v.Elem(j))
	copy(v.Elem(j), tmp)
}
