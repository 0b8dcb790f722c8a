package vec

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_RemoveCompaction(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)
	defer v.Close()

	for i := uint32(0); i < 5; i++ {
		require.NoError(t, v.PushBack(u32(i))) // [0 1 2 3 4]
	}

	require.NoError(t, v.Remove(1)) // [0 2 3 4]
	require.Equal(t, 4, v.Len())
	for i, want := range []uint32{0, 2, 3, 4} {
		elem, err := v.Get(i)
		require.NoError(t, err)
		assert.Equalf(t, u32(want), elem, "element %d after remove", i)
	}

	// Removing the last index degenerates to a pop.
	require.NoError(t, v.Remove(3)) // [0 2 3]
	require.Equal(t, 3, v.Len())
	for i, want := range []uint32{0, 2, 3} {
		elem, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, u32(want), elem)
	}

	assert.ErrorIs(t, v.Remove(3), ErrIndexRange)
	assert.ErrorIs(t, v.Remove(-1), ErrIndexRange)
}

func TestVector_RemoveToEmpty(t *testing.T) {
	v, err := NewWithDefault(4, 3, u32(9))
	require.NoError(t, err)
	defer v.Close()

	for iter := 0; iter < 3; iter++ {
		require.NoError(t, v.Remove(0))
	}
	assert.True(t, v.IsEmpty())
	assert.ErrorIs(t, v.Remove(0), ErrIndexRange)
}

func TestVector_Pop(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.PushBack(u32(1)))
	require.NoError(t, v.PushBack(u32(2)))

	got, err := v.Pop()
	require.NoError(t, err)
	assert.Equal(t, u32(2), got)
	assert.Equal(t, 1, v.Len())

	got, err = v.Pop()
	require.NoError(t, err)
	assert.Equal(t, u32(1), got)
	assert.True(t, v.IsEmpty())

	_, err = v.Pop()
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestVector_Swap(t *testing.T) {
	v, err := New(1)
	require.NoError(t, err)
	defer v.Close()

	for _, b := range []byte{'a', 'b', 'c'} {
		require.NoError(t, v.PushBack([]byte{b}))
	}

	// Equal indexes are a no-op.
	require.NoError(t, v.Swap(0, 0))
	for i, want := range []byte{'a', 'b', 'c'} {
		elem, err := v.Get(i)
		require.NoError(t, err)
		assert.Equal(t, []byte{want}, elem)
	}

	require.NoError(t, v.Swap(0, 2))
	for i, want := range []byte{'c', 'b', 'a'} {
		elem, err := v.Get(i)
		require.NoError(t, err)
		assert.Equalf(t, []byte{want}, elem, "element %d after swap", i)
	}

	assert.ErrorIs(t, v.Swap(0, 3), ErrIndexRange)
	assert.ErrorIs(t, v.Swap(-1, 0), ErrIndexRange)
}

func TestVector_PushStrideMismatch(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)
	defer v.Close()

	assert.ErrorIs(t, v.PushBack([]byte{1, 2}), ErrStrideMismatch)
	assert.ErrorIs(t, v.PushBack(nil), ErrStrideMismatch)
	assert.Equal(t, 0, v.Len())
}

// TestVector_RandomOpsInvariants drives a random operation sequence against
// a plain-slice model and checks the structural invariants after every
// step. Fixed seed for reproducibility.
func TestVector_RandomOpsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	v, err := NewWithCapacity(4, 1)
	require.NoError(t, err)
	defer v.Close()

	var model []uint32

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(5); {
		case op <= 2: // push, weighted
			x := rng.Uint32()
			require.NoError(t, v.PushBack(u32(x)))
			model = append(model, x)
		case op == 3: // remove
			if len(model) > 0 {
				i := rng.Intn(len(model))
				require.NoError(t, v.Remove(i))
				model = append(model[:i], model[i+1:]...)
			}
		default: // swap
			if len(model) > 1 {
				i, j := rng.Intn(len(model)), rng.Intn(len(model))
				require.NoError(t, v.Swap(i, j))
				model[i], model[j] = model[j], model[i]
			}
		}

		require.Equalf(t, len(model), v.Len(), "step %d: length", step)
		require.LessOrEqualf(t, v.Len(), v.Cap(), "step %d: length <= capacity", step)
		require.Equalf(t, 1, bits.OnesCount(uint(v.Cap())), "step %d: capacity %d must be a power of two", step, v.Cap())
	}

	for i, want := range model {
		elem, err := v.Get(i)
		require.NoError(t, err)
		require.Equalf(t, u32(want), elem, "final element %d", i)
	}
}
