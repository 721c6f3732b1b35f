package column

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/internal/options"
	"github.com/arloliu/featstore/subset"
)

// Columns owns the feature columns of one dataset, keyed by feature id.
//
// All columns share the same logical size. Columns is not safe for
// concurrent mutation; reads after the last Add are safe.
type Columns struct {
	holders map[uint32]FeatureValuesHolder
	order   []uint32
	size    uint32
	logger  *zap.Logger
}

// ColumnsOption configures a Columns collection.
type ColumnsOption = options.Option[*Columns]

// WithColumnsLogger sets the logger. The default discards everything.
func WithColumnsLogger(logger *zap.Logger) ColumnsOption {
	return options.NoError(func(c *Columns) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// NewColumns creates an empty collection.
func NewColumns(opts ...ColumnsOption) (*Columns, error) {
	c := &Columns{
		holders: make(map[uint32]FeatureValuesHolder),
		logger:  zap.NewNop(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Add inserts h. The first column fixes the logical size of the collection.
func (c *Columns) Add(h FeatureValuesHolder) error {
	if _, ok := c.holders[h.ID()]; ok {
		return fmt.Errorf("%w: %d", errs.ErrDuplicateFeatureID, h.ID())
	}
	if len(c.order) > 0 && h.Size() != c.size {
		return fmt.Errorf("%w: feature %d has %d values, collection has %d", errs.ErrSizeMismatch, h.ID(), h.Size(), c.size)
	}

	c.size = h.Size()
	c.holders[h.ID()] = h
	c.order = append(c.order, h.ID())

	c.logger.Debug("column added",
		zap.Uint32("feature_id", h.ID()),
		zap.Stringer("type", h.Type()),
		zap.Uint32("size", h.Size()))

	return nil
}

// Get returns the column of featureID.
func (c *Columns) Get(featureID uint32) (FeatureValuesHolder, bool) {
	h, ok := c.holders[featureID]
	return h, ok
}

// Lookup returns the column of featureID as the concrete holder type H.
func Lookup[H FeatureValuesHolder](c *Columns, featureID uint32) (H, bool) {
	h, ok := c.holders[featureID].(H)
	return h, ok
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.order)
}

// Size returns the logical size shared by all columns.
func (c *Columns) Size() uint32 {
	return c.size
}

// IDs returns the feature ids in ascending order.
func (c *Columns) IDs() []uint32 {
	ids := slices.Clone(c.order)
	slices.Sort(ids)

	return ids
}

// ForEach calls fn for every column in insertion order.
func (c *Columns) ForEach(fn func(h FeatureValuesHolder)) {
	for _, id := range c.order {
		fn(c.holders[id])
	}
}

// Subset returns a collection whose columns read the positions selected by
// idx among the positions of c. Backing data is shared, not copied.
func (c *Columns) Subset(idx *subset.Indexing) (*Columns, error) {
	if idx == nil {
		return nil, errs.ErrEmptySubsetIndexing
	}

	out := &Columns{
		holders: make(map[uint32]FeatureValuesHolder, len(c.holders)),
		order:   slices.Clone(c.order),
		size:    idx.Size(),
		logger:  c.logger,
	}
	for _, id := range c.order {
		h, err := c.holders[id].WithSubset(idx)
		if err != nil {
			return nil, err
		}
		out.holders[id] = h
	}

	c.logger.Debug("columns subset",
		zap.Int("columns", len(c.order)),
		zap.Stringer("kind", idx.Kind()),
		zap.Uint32("size", idx.Size()))

	return out, nil
}
