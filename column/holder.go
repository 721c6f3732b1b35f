package column

import (
	"fmt"

	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/format"
	"github.com/arloliu/featstore/subset"
)

// FeatureValuesHolder is the contract shared by all column encodings.
type FeatureValuesHolder interface {
	// Type returns the physical encoding of the column.
	Type() format.FeatureValuesType
	// ID returns the feature the column represents.
	ID() uint32
	// Size returns the number of logical values, the size of the subset.
	Size() uint32
	// Indexing returns the subset indexing the column is read through.
	Indexing() *subset.Indexing
	// WithSubset returns a holder over the same backing data whose positions
	// are selected by idx among this holder's logical positions.
	WithSubset(idx *subset.Indexing) (FeatureValuesHolder, error)
}

// noCopy makes go vet's copylocks check report holders copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type header struct {
	_ noCopy

	typ       format.FeatureValuesType
	featureID uint32
	size      uint32
}

func checkIndexing(typ format.FeatureValuesType, featureID uint32, idx *subset.Indexing) error {
	if idx == nil {
		return fmt.Errorf("%s feature %d: %w", typ, featureID, errs.ErrEmptySubsetIndexing)
	}

	return nil
}

// checkValueType rejects a feature type whose values are not stored as T.
func checkValueType[T any](typ format.FeatureValuesType) error {
	var zero T
	ok := false
	switch any(zero).(type) {
	case float32:
		ok = typ == format.TypeFloat
	case uint8:
		ok = typ == format.TypeQuantizedFloat
	case uint32:
		ok = typ == format.TypeHashedCategorical || typ == format.TypePerfectHashedCategorical
	}
	if !ok {
		return fmt.Errorf("%w: %s values cannot be stored as %T", errs.ErrInvalidFeatureType, typ, zero)
	}

	return nil
}

// Type implements FeatureValuesHolder.
func (h *header) Type() format.FeatureValuesType {
	return h.typ
}

// ID implements FeatureValuesHolder.
func (h *header) ID() uint32 {
	return h.featureID
}

// Size implements FeatureValuesHolder.
func (h *header) Size() uint32 {
	return h.size
}
