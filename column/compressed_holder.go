package column

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/format"
	"github.com/arloliu/featstore/subset"
)

// QuantizedFloatValues is implemented by quantized float columns.
//
// It is an interface rather than a concrete type so that columns resident
// outside host memory can provide their own extraction.
type QuantizedFloatValues interface {
	FeatureValuesHolder
	BitsPerKey() uint8
	ExtractValues(exec executor.Executor) []uint8
}

// QuantizedCatValues is implemented by perfect-hashed categorical columns.
type QuantizedCatValues interface {
	FeatureValuesHolder
	BitsPerKey() uint8
	ExtractValues(exec executor.Executor) []uint32
}

// CompressedValuesHolder stores bit-packed keys decoded as T, the natural
// value type of the column.
type CompressedValuesHolder[T compressed.Unsigned] struct {
	header

	src    *compressed.Array
	rawPtr unsafe.Pointer
	idx    *subset.Indexing
}

type (
	// QuantizedFloatValuesHolder holds bin indices of a quantized float feature.
	QuantizedFloatValuesHolder = CompressedValuesHolder[uint8]
	// QuantizedCatValuesHolder holds dense ids of a perfect-hashed categorical feature.
	QuantizedCatValuesHolder = CompressedValuesHolder[uint32]
)

var (
	_ QuantizedFloatValues = (*QuantizedFloatValuesHolder)(nil)
	_ QuantizedCatValues   = (*QuantizedCatValuesHolder)(nil)
)

// NewCompressedValuesHolder creates a compressed column of type typ, decoded
// as T: uint8 for QuantizedFloat, uint32 for PerfectHashedCategorical. The
// key width of arr must not exceed the width of T.
func NewCompressedValuesHolder[T compressed.Unsigned](
	typ format.FeatureValuesType,
	featureID uint32,
	arr *compressed.Array,
	idx *subset.Indexing,
) (*CompressedValuesHolder[T], error) {
	if !typ.IsCompressed() {
		return nil, fmt.Errorf("%w: %s is not a compressed column type", errs.ErrInvalidFeatureType, typ)
	}
	if err := checkValueType[T](typ); err != nil {
		return nil, err
	}
	if err := checkIndexing(typ, featureID, idx); err != nil {
		return nil, err
	}
	if arr == nil {
		return nil, fmt.Errorf("%s feature %d: %w", typ, featureID, errs.ErrNilCompressedArray)
	}
	if err := compressed.CheckDecodeWidth[T](arr); err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", typ, featureID, err)
	}
	if err := idx.Validate(int(arr.Size())); err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", typ, featureID, err)
	}

	return &CompressedValuesHolder[T]{
		header: header{typ: typ, featureID: featureID, size: idx.Size()},
		src:    arr,
		rawPtr: arr.RawPtr(),
		idx:    idx,
	}, nil
}

// NewQuantizedFloatValuesHolder creates a QuantizedFloat column. Keys are at most 8 bits.
func NewQuantizedFloatValuesHolder(featureID uint32, arr *compressed.Array, idx *subset.Indexing) (*QuantizedFloatValuesHolder, error) {
	return NewCompressedValuesHolder[uint8](format.TypeQuantizedFloat, featureID, arr, idx)
}

// NewQuantizedCatValuesHolder creates a PerfectHashedCategorical column.
func NewQuantizedCatValuesHolder(featureID uint32, arr *compressed.Array, idx *subset.Indexing) (*QuantizedCatValuesHolder, error) {
	return NewCompressedValuesHolder[uint32](format.TypePerfectHashedCategorical, featureID, arr, idx)
}

// Indexing implements FeatureValuesHolder.
func (h *CompressedValuesHolder[T]) Indexing() *subset.Indexing {
	return h.idx
}

// SrcData returns the packed keys in physical order.
func (h *CompressedValuesHolder[T]) SrcData() *compressed.Array {
	return h.src
}

// BitsPerKey returns the key width fixed at construction.
func (h *CompressedValuesHolder[T]) BitsPerKey() uint8 {
	return h.src.BitsPerKey()
}

// CompressedData returns a view of the packed keys in logical order.
func (h *CompressedValuesHolder[T]) CompressedData() compressed.SubsetView {
	return compressed.NewSubsetView(h.src, h.idx)
}

// ArrayData returns the packed storage read in place as []T through the
// subset, skipping unpacking. It fails unless BitsPerKey equals the width of T.
func (h *CompressedValuesHolder[T]) ArrayData() (subset.Array[T], error) {
	return RawArrayData[T](h)
}

// RawArrayData is ArrayData for an arbitrary element type R: it succeeds iff
// the key width equals the width of R.
func RawArrayData[R, T compressed.Unsigned](h *CompressedValuesHolder[T]) (subset.Array[R], error) {
	if err := compressed.CheckRawArray[R](h.src); err != nil {
		return subset.Array[R]{}, fmt.Errorf("%s feature %d: %w", h.typ, h.featureID, err)
	}

	var raw []R
	if h.rawPtr != nil {
		raw = unsafe.Slice((*R)(h.rawPtr), h.src.Size())
	}

	return subset.NewArray(raw, h.idx), nil
}

// ExtractValues decodes the column in logical order into a newly allocated
// slice. It works for every key width.
func (h *CompressedValuesHolder[T]) ExtractValues(exec executor.Executor) []T {
	return ParallelExtractValues[T](h.CompressedData(), exec)
}

// ExtractValuesAs is ExtractValues into a different element type R, which
// must be wide enough for the keys.
func ExtractValuesAs[R, T compressed.Unsigned](h *CompressedValuesHolder[T], exec executor.Executor) ([]R, error) {
	if err := compressed.CheckDecodeWidth[R](h.src); err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", h.typ, h.featureID, err)
	}

	return ParallelExtractValues[R](h.CompressedData(), exec), nil
}

// Resubset returns a holder sharing the packed keys, with logical positions
// selected by idx among the positions of h.
func (h *CompressedValuesHolder[T]) Resubset(idx *subset.Indexing) (*CompressedValuesHolder[T], error) {
	composed, err := subset.Compose(h.idx, idx)
	if err != nil {
		return nil, fmt.Errorf("%s feature %d: %w", h.typ, h.featureID, err)
	}

	return NewCompressedValuesHolder[T](h.typ, h.featureID, h.src, composed)
}

// WithSubset implements FeatureValuesHolder.
func (h *CompressedValuesHolder[T]) WithSubset(idx *subset.Indexing) (FeatureValuesHolder, error) {
	return h.Resubset(idx)
}
