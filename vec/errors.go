package vec

import "errors"

var (
	// ErrBadStride indicates a non-positive element stride at construction.
	ErrBadStride = errors.New("vec: stride must be positive")

	// ErrBadCapacity indicates a capacity request that is negative or whose
	// byte size would overflow.
	ErrBadCapacity = errors.New("vec: invalid capacity")

	// ErrIndexRange indicates an index outside [0, Len()).
	ErrIndexRange = errors.New("vec: index out of range")

	// ErrStrideMismatch indicates an element or query whose byte size does
	// not equal the vector's stride, or two vectors with differing strides.
	ErrStrideMismatch = errors.New("vec: element size does not match stride")

	// ErrShrink indicates a Grow target below the current capacity.
	ErrShrink = errors.New("vec: target capacity below current capacity")

	// ErrClosed indicates use of a vector after Close.
	ErrClosed = errors.New("vec: use after Close")
)
