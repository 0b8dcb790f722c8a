package vec

import (
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"

	"github.com/zkora/veckit/arena"
)

// Benchmarks compare the append path against two common alternatives: a
// native Go slice and eapache/queue's growable ring. Neither offers the
// stride-erased contract, so this is a cost-of-abstraction measure, not an
// apples-to-apples race.

const benchPushes = 4096

func BenchmarkVector_PushBack(b *testing.B) {
	elem := u32(12345)
	for n := 0; n < b.N; n++ {
		v, err := New(4)
		require.NoError(b, err)
		for p := 0; p < benchPushes; p++ {
			if err := v.PushBack(elem); err != nil {
				b.Fatal(err)
			}
		}
		v.Close()
	}
}

func BenchmarkVector_PushBackMapped(b *testing.B) {
	elem := u32(12345)
	for n := 0; n < b.N; n++ {
		v, err := NewIn(arena.NewMapped(), 4, DefaultCapacity)
		require.NoError(b, err)
		for p := 0; p < benchPushes; p++ {
			if err := v.PushBack(elem); err != nil {
				b.Fatal(err)
			}
		}
		v.Close()
	}
}

func BenchmarkNativeAppend(b *testing.B) {
	for n := 0; n < b.N; n++ {
		s := make([]uint32, 0, DefaultCapacity)
		for p := 0; p < benchPushes; p++ {
			s = append(s, 12345)
		}
		_ = s
	}
}

func BenchmarkEapacheQueue_Add(b *testing.B) {
	for n := 0; n < b.N; n++ {
		q := queue.New()
		for p := 0; p < benchPushes; p++ {
			q.Add(uint32(12345))
		}
		_ = q.Length()
	}
}

func BenchmarkVector_IndexOf(b *testing.B) {
	v, err := New(4)
	require.NoError(b, err)
	defer v.Close()
	for i := uint32(0); i < uint32(benchPushes); i++ {
		require.NoError(b, v.PushBack(u32(i)))
	}
	query := u32(benchPushes - 1) // worst case: last element

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := v.IndexOf(query); err != nil {
			b.Fatal(err)
		}
	}
}
