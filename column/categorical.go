package column

import (
	"fmt"

	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/internal/hash"
	"github.com/arloliu/featstore/internal/options"
)

// HashCategoricalValues hashes categorical string values to the 32-bit
// hashes stored by HashedCategorical columns.
func HashCategoricalValues(values []string, exec executor.Executor) []uint32 {
	out := make([]uint32, len(values))
	exec.ExecRange(len(values), 0, func(begin, end int) {
		for i := begin; i < end; i++ {
			out[i] = hash.CatValue(values[i])
		}
	})

	return out
}

// CatFeaturePerfectHash maps the hashes of one categorical feature to dense ids.
type CatFeaturePerfectHash struct {
	ids    map[uint32]uint32
	counts []uint32
}

// Len returns the number of distinct values.
func (p *CatFeaturePerfectHash) Len() int {
	return len(p.counts)
}

// Lookup returns the dense id of a hashed value.
func (p *CatFeaturePerfectHash) Lookup(hashed uint32) (uint32, bool) {
	id, ok := p.ids[hashed]
	return id, ok
}

// Count returns how many physical values received id.
func (p *CatFeaturePerfectHash) Count(id uint32) uint32 {
	if int(id) >= len(p.counts) {
		return 0
	}

	return p.counts[id]
}

type perfectHashConfig struct {
	bitsPerKey uint8
}

// PerfectHashOption configures PerfectHashCatValues.
type PerfectHashOption = options.Option[*perfectHashConfig]

// WithCatBitsPerKey stores ids with an explicit width, e.g. 32 to keep the
// raw ArrayData fast path available.
func WithCatBitsPerKey(bitsPerKey uint8) PerfectHashOption {
	return options.Named("categorical bits per key", func(c *perfectHashConfig) error {
		if bitsPerKey == 0 || bitsPerKey > compressed.MaxBitsPerKey {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBitsPerKey, bitsPerKey)
		}
		c.bitsPerKey = bitsPerKey

		return nil
	})
}

// PerfectHashCatValues converts a HashedCategorical column into a
// PerfectHashedCategorical column.
//
// Ids are assigned densely in order of first appearance in physical order,
// so the mapping is deterministic. By default ids use the minimum width the
// number of distinct values needs. The result keeps the source indexing.
func PerfectHashCatValues(
	h *HashedCatValuesHolder,
	opts ...PerfectHashOption,
) (*QuantizedCatValuesHolder, *CatFeaturePerfectHash, error) {
	cfg := &perfectHashConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, nil, fmt.Errorf("feature %d: %w", h.ID(), err)
	}

	values := h.SrcData().Data()
	ph := &CatFeaturePerfectHash{ids: make(map[uint32]uint32)}
	ids := make([]uint32, len(values))
	for i, v := range values {
		id, ok := ph.ids[v]
		if !ok {
			id = uint32(len(ph.counts))
			ph.ids[v] = id
			ph.counts = append(ph.counts, 0)
		}
		ph.counts[id]++
		ids[i] = id
	}

	need := compressed.BitsForMaxValue(uint64(max(ph.Len()-1, 0)))
	bitsPerKey := need
	if cfg.bitsPerKey != 0 {
		if cfg.bitsPerKey < need {
			return nil, nil, fmt.Errorf("feature %d: %w: %d values need %d bits, have %d",
				h.ID(), errs.ErrInvalidBitsPerKey, ph.Len(), need, cfg.bitsPerKey)
		}
		bitsPerKey = cfg.bitsPerKey
	}

	arr, err := compressed.FromValues(ids, bitsPerKey)
	if err != nil {
		return nil, nil, err
	}

	holder, err := NewQuantizedCatValuesHolder(h.ID(), arr, h.Indexing())
	if err != nil {
		return nil, nil, err
	}

	return holder, ph, nil
}
