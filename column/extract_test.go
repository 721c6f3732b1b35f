package column

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/subset"
)

func randomPacked(t testing.TB, n int, bitsPerKey uint8, seed int64) ([]uint32, *compressed.Array) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]uint32, n)
	for i := range values {
		values[i] = uint32(rng.Int63n(int64(1) << bitsPerKey))
	}

	return values, mustPacked(t, values, bitsPerKey)
}

func TestParallelExtractValues_Identity(t *testing.T) {
	for _, bits := range []uint8{1, 5, 8, 13, 16, 32} {
		values, arr := randomPacked(t, 5000, bits, int64(bits))
		out := ParallelExtractValues[uint32](compressed.NewSubsetView(arr, subset.NewFull(arr.Size())), testExecutor(t, 4))
		require.Equal(t, values, out, "bits %d", bits)
	}
}

func TestParallelExtractValues_Permutation(t *testing.T) {
	require := require.New(t)

	values, arr := randomPacked(t, 3000, 11, 42)
	perm := rand.New(rand.NewSource(7)).Perm(len(values))
	indices := make([]uint32, len(perm))
	for i, p := range perm {
		indices[i] = uint32(p)
	}

	out := ParallelExtractValues[uint32](compressed.NewSubsetView(arr, subset.NewIndexed(indices)), testExecutor(t, 3))
	require.Len(out, len(values))
	for i, p := range perm {
		require.Equal(values[p], out[i])
	}
}

func TestParallelExtractValues_DeterministicAcrossThreads(t *testing.T) {
	require := require.New(t)

	_, arr := randomPacked(t, 10000, 7, 3)
	bm := roaring.New()
	for i := uint32(0); i < arr.Size(); i += 3 {
		bm.Add(i)
	}
	view := compressed.NewSubsetView(arr, subset.FromBitmap(bm))

	want := ParallelExtractValues[uint16](view, testExecutor(t, 1))
	require.Len(want, int(bm.GetCardinality()))
	for _, threads := range []int{2, 5, 16} {
		require.Equal(want, ParallelExtractValues[uint16](view, testExecutor(t, threads)), "threads %d", threads)
	}
}

func TestParallelExtractValues_Empty(t *testing.T) {
	_, arr := randomPacked(t, 10, 4, 1)
	out := ParallelExtractValues[uint8](compressed.NewSubsetView(arr, subset.NewIndexed(nil)), testExecutor(t, 2))
	require.Empty(t, out)
}

func TestParallelExtractValues_TruncatedFull(t *testing.T) {
	values, arr := randomPacked(t, 100, 8, 9)
	out := ParallelExtractValues[uint8](compressed.NewSubsetView(arr, subset.NewFull(10)), testExecutor(t, 2))
	for i := range out {
		require.Equal(t, uint8(values[i]), out[i])
	}
	require.Len(t, out, 10)
}

func BenchmarkParallelExtractValues(b *testing.B) {
	values := make([]uint32, 1<<20)
	for i := range values {
		values[i] = uint32(i % 61)
	}
	arr, err := compressed.FromValues(values, 6)
	require.NoError(b, err)
	indices := make([]uint32, len(values)/2)
	for i := range indices {
		indices[i] = uint32(i * 2)
	}
	view := compressed.NewSubsetView(arr, subset.NewIndexed(indices))
	exec := testExecutor(b, 8)

	b.ResetTimer()
	for range b.N {
		_ = ParallelExtractValues[uint8](view, exec)
	}
}
