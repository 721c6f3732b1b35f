package column

import (
	"fmt"

	"github.com/arloliu/featstore/buffer"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/format"
	"github.com/arloliu/featstore/subset"
)

// ArrayValuesHolder stores uncompressed native-width values.
type ArrayValuesHolder[T any] struct {
	header

	src buffer.MaybeOwningArray[T]
	idx *subset.Indexing
}

type (
	// FloatValuesHolder holds a raw float feature.
	FloatValuesHolder = ArrayValuesHolder[float32]
	// HashedCatValuesHolder holds 32-bit hashes of categorical values.
	HashedCatValuesHolder = ArrayValuesHolder[uint32]
)

var (
	_ FeatureValuesHolder = (*FloatValuesHolder)(nil)
	_ FeatureValuesHolder = (*HashedCatValuesHolder)(nil)
)

// NewArrayValuesHolder creates a raw column of type typ, which must be stored
// as T: float32 for Float, uint32 for HashedCategorical. The backing data is
// not copied; every physical position reachable through idx must lie inside it.
func NewArrayValuesHolder[T any](
	typ format.FeatureValuesType,
	featureID uint32,
	data buffer.MaybeOwningArray[T],
	idx *subset.Indexing,
) (*ArrayValuesHolder[T], error) {
	if typ.IsCompressed() || !typ.IsValid() {
		return nil, fmt.Errorf("%w: %s is not a raw column type", errs.ErrInvalidFeatureType, typ)
	}
	if err := checkValueType[T](typ); err != nil {
		return nil, err
	}

	if err := checkIndexing(typ, featureID, idx); err != nil {
		return nil, err
	}
	if err := idx.Validate(data.Len()); err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", typ, featureID, err)
	}

	return &ArrayValuesHolder[T]{
		header: header{typ: typ, featureID: featureID, size: idx.Size()},
		src:    data,
		idx:    idx,
	}, nil
}

// NewFloatValuesHolder creates a Float column.
func NewFloatValuesHolder(featureID uint32, data buffer.MaybeOwningArray[float32], idx *subset.Indexing) (*FloatValuesHolder, error) {
	return NewArrayValuesHolder(format.TypeFloat, featureID, data, idx)
}

// NewHashedCatValuesHolder creates a HashedCategorical column.
func NewHashedCatValuesHolder(featureID uint32, data buffer.MaybeOwningArray[uint32], idx *subset.Indexing) (*HashedCatValuesHolder, error) {
	return NewArrayValuesHolder(format.TypeHashedCategorical, featureID, data, idx)
}

// Indexing implements FeatureValuesHolder.
func (h *ArrayValuesHolder[T]) Indexing() *subset.Indexing {
	return h.idx
}

// SrcData returns the backing data in physical order.
func (h *ArrayValuesHolder[T]) SrcData() buffer.MaybeOwningArray[T] {
	return h.src
}

// ArrayData returns a zero-copy view of the column in logical order.
func (h *ArrayValuesHolder[T]) ArrayData() subset.Array[T] {
	return subset.NewArray(h.src.Data(), h.idx)
}

// ExtractValues returns a newly allocated copy of the column in logical order.
func (h *ArrayValuesHolder[T]) ExtractValues(exec executor.Executor) []T {
	return h.ArrayData().Extract(exec)
}

// Resubset returns a holder sharing the backing data, with logical positions
// selected by idx among the positions of h.
func (h *ArrayValuesHolder[T]) Resubset(idx *subset.Indexing) (*ArrayValuesHolder[T], error) {
	composed, err := subset.Compose(h.idx, idx)
	if err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", h.typ, h.featureID, err)
	}

	return NewArrayValuesHolder(h.typ, h.featureID, h.src, composed)
}

// WithSubset implements FeatureValuesHolder.
func (h *ArrayValuesHolder[T]) WithSubset(idx *subset.Indexing) (FeatureValuesHolder, error) {
	return h.Resubset(idx)
}
