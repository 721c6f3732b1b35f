package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/featstore/buffer"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/format"
	"github.com/arloliu/featstore/subset"
)

func TestBin(t *testing.T) {
	borders := []float32{0.5, 1.5, 2.5}
	tests := []struct {
		value float32
		want  uint8
	}{
		{-1, 0},
		{0.5, 0},
		{1, 1},
		{1.5, 1},
		{2.5, 2},
		{3, 3},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), 3},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Bin(tt.value, borders), "value %v", tt.value)
	}
	require.Equal(t, uint8(0), Bin(42, nil))
}

func TestQuantizeFloatValues(t *testing.T) {
	require := require.New(t)

	data := []float32{-1, 0.5, 1, 2.5, 3, float32(math.NaN())}
	idx := subset.NewIndexed([]uint32{5, 4, 3, 2, 1, 0})
	h, err := NewFloatValuesHolder(11, buffer.View(data), idx)
	require.NoError(err)

	q, err := QuantizeFloatValues(h, []float32{0.5, 1.5, 2.5}, executor.Sequential())
	require.NoError(err)
	require.Equal(format.TypeQuantizedFloat, q.Type())
	require.Equal(uint32(11), q.ID())
	require.Equal(uint8(8), q.BitsPerKey())
	require.Same(idx, q.Indexing())
	require.Equal([]uint8{0, 3, 2, 1, 0, 0}, q.ExtractValues(executor.Sequential()))

	raw, err := q.ArrayData()
	require.NoError(err)
	require.Equal(uint8(3), raw.At(1))
}

func TestQuantizeFloatValues_Options(t *testing.T) {
	require := require.New(t)

	h, err := NewFloatValuesHolder(1, buffer.View([]float32{0, 1, 2, 3}), subset.NewFull(4))
	require.NoError(err)
	borders := []float32{0.5, 1.5, 2.5}

	packed, err := QuantizeFloatValues(h, borders, executor.Sequential(), WithPackedBits())
	require.NoError(err)
	require.Equal(uint8(2), packed.BitsPerKey())
	require.Equal([]uint8{0, 1, 2, 3}, packed.ExtractValues(executor.Sequential()))
	_, err = packed.ArrayData()
	require.ErrorIs(err, errs.ErrRawArrayMismatch)

	explicit, err := QuantizeFloatValues(h, borders, executor.Sequential(), WithQuantizedBitsPerKey(4))
	require.NoError(err)
	require.Equal(uint8(4), explicit.BitsPerKey())

	_, err = QuantizeFloatValues(h, borders, executor.Sequential(), WithQuantizedBitsPerKey(1))
	require.ErrorIs(err, errs.ErrInvalidBitsPerKey)

	_, err = QuantizeFloatValues(h, borders, executor.Sequential(), WithQuantizedBitsPerKey(9))
	require.ErrorIs(err, errs.ErrInvalidBitsPerKey)
}

func TestQuantizeFloatValues_InvalidBorders(t *testing.T) {
	require := require.New(t)

	h, err := NewFloatValuesHolder(1, buffer.View([]float32{0}), subset.NewFull(1))
	require.NoError(err)

	_, err = QuantizeFloatValues(h, []float32{1, 1}, executor.Sequential())
	require.ErrorIs(err, errs.ErrBordersNotSorted)

	_, err = QuantizeFloatValues(h, []float32{2, 1}, executor.Sequential())
	require.ErrorIs(err, errs.ErrBordersNotSorted)

	borders := make([]float32, MaxBorders+1)
	for i := range borders {
		borders[i] = float32(i)
	}
	_, err = QuantizeFloatValues(h, borders, executor.Sequential())
	require.ErrorIs(err, errs.ErrTooManyBorders)

	q, err := QuantizeFloatValues(h, borders[:MaxBorders], executor.Sequential(), WithPackedBits())
	require.NoError(err)
	require.Equal(uint8(8), q.BitsPerKey())
}

func TestQuantizeFloatValues_ParallelMatchesSequential(t *testing.T) {
	require := require.New(t)

	data := make([]float32, 10007)
	for i := range data {
		data[i] = float32(i%97) / 10
	}
	borders := []float32{0.5, 1, 2, 3, 5, 8, 9.2}
	h, err := NewFloatValuesHolder(1, buffer.View(data), subset.NewFull(uint32(len(data))))
	require.NoError(err)

	want, err := QuantizeFloatValues(h, borders, executor.Sequential(), WithPackedBits())
	require.NoError(err)
	for _, threads := range []int{2, 7} {
		got, err := QuantizeFloatValues(h, borders, testExecutor(t, threads), WithPackedBits())
		require.NoError(err)
		require.Equal(want.SrcData().Words(), got.SrcData().Words(), "threads %d", threads)
	}
}
