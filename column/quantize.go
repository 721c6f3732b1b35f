package column

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/internal/options"
)

// MaxBorders is the largest border grid a quantized float column can use:
// bin indices must fit into 8 bits.
const MaxBorders = math.MaxUint8

type quantizeConfig struct {
	bitsPerKey uint8
	packed     bool
}

// QuantizeOption configures QuantizeFloatValues.
type QuantizeOption = options.Option[*quantizeConfig]

// WithPackedBits stores bin indices with the minimum width the border grid
// needs instead of a full byte. Raw ArrayData is then unavailable unless
// the grid happens to need 8 bits.
func WithPackedBits() QuantizeOption {
	return options.NoError(func(c *quantizeConfig) {
		c.packed = true
	})
}

// WithQuantizedBitsPerKey stores bin indices with an explicit width.
func WithQuantizedBitsPerKey(bitsPerKey uint8) QuantizeOption {
	return options.Named("quantized bits per key", func(c *quantizeConfig) error {
		if bitsPerKey == 0 || bitsPerKey > 8 {
			return fmt.Errorf("%w: %d not in [1, 8]", errs.ErrInvalidBitsPerKey, bitsPerKey)
		}
		c.bitsPerKey = bitsPerKey

		return nil
	})
}

// Bin returns the bin of value on a sorted border grid: the number of
// borders strictly below value. NaN falls into bin 0.
func Bin(value float32, borders []float32) uint8 {
	if value != value {
		return 0
	}

	return uint8(sort.Search(len(borders), func(i int) bool { return borders[i] >= value }))
}

// QuantizeFloatValues converts a Float column into a QuantizedFloat column
// on the given border grid.
//
// The whole backing buffer is quantized in physical order and the result
// keeps the source indexing, so the quantized column is positionally
// interchangeable with the source and can be shared by the same subsets.
func QuantizeFloatValues(
	h *FloatValuesHolder,
	borders []float32,
	exec executor.Executor,
	opts ...QuantizeOption,
) (*QuantizedFloatValuesHolder, error) {
	if len(borders) > MaxBorders {
		return nil, fmt.Errorf("feature %d: %w: %d > %d", h.ID(), errs.ErrTooManyBorders, len(borders), MaxBorders)
	}
	for i := 1; i < len(borders); i++ {
		if !(borders[i-1] < borders[i]) {
			return nil, fmt.Errorf("feature %d: %w", h.ID(), errs.ErrBordersNotSorted)
		}
	}

	cfg := &quantizeConfig{bitsPerKey: 8}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("feature %d: %w", h.ID(), err)
	}

	need := compressed.BitsForMaxValue(uint64(len(borders)))
	bitsPerKey := cfg.bitsPerKey
	if cfg.packed {
		bitsPerKey = need
	}
	if bitsPerKey < need {
		return nil, fmt.Errorf("feature %d: %w: %d borders need %d bits, have %d",
			h.ID(), errs.ErrInvalidBitsPerKey, len(borders), need, bitsPerKey)
	}

	values := h.SrcData().Data()
	arr, err := compressed.New(uint32(len(values)), bitsPerKey)
	if err != nil {
		return nil, err
	}

	// Blocks are aligned to whole words so concurrent blocks never write the same word.
	kpw := int(arr.KeysPerWord())
	blockSize := (exec.BlockSize(len(values)) + kpw - 1) / kpw * kpw

	exec.ExecRange(len(values), blockSize, func(begin, end int) {
		for i := begin; i < end; i++ {
			// Cannot fail: bitsPerKey covers len(borders).
			_ = arr.Set(uint32(i), uint64(Bin(values[i], borders)))
		}
	})

	return NewQuantizedFloatValuesHolder(h.ID(), arr, h.Indexing())
}
