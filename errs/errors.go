// Package errs defines the sentinel errors returned by featstore packages.
//
// All errors in this layer are contract violations rather than transient
// conditions: callers are expected to validate inputs instead of retrying.
// Call sites wrap these sentinels with additional context, so compare with
// errors.Is.
package errs

import "errors"

// Construction precondition errors.
var (
	// ErrEmptySubsetIndexing is returned when a column holder is constructed without a subset indexing.
	ErrEmptySubsetIndexing = errors.New("subsetIndexing is empty")
	// ErrNilCompressedArray is returned when a compressed holder is constructed without backing data.
	ErrNilCompressedArray = errors.New("compressed array is nil")
	// ErrSubsetOutOfRange is returned when a subset maps a logical position beyond the backing data.
	ErrSubsetOutOfRange = errors.New("subset indexing refers past the end of the backing data")
	// ErrInvalidBlocks is returned for malformed block subsets.
	ErrInvalidBlocks = errors.New("invalid subset blocks")
	// ErrInvalidFeatureType is returned for an unknown or unexpected feature values type.
	ErrInvalidFeatureType = errors.New("invalid feature values type")
	// ErrDuplicateFeatureID is returned when a collection already holds a column with the same feature id.
	ErrDuplicateFeatureID = errors.New("duplicate feature id")
	// ErrSizeMismatch is returned when columns of one collection disagree on logical size.
	ErrSizeMismatch = errors.New("column size mismatch")
)

// Feature naming errors.
var (
	// ErrInvalidFeatureName is returned for an empty feature name.
	ErrInvalidFeatureName = errors.New("invalid feature name: empty")
	// ErrDuplicateFeatureName is returned when the same feature name is registered twice.
	ErrDuplicateFeatureName = errors.New("duplicate feature name")
	// ErrHashCollision is returned when two feature names hash to the same feature id.
	ErrHashCollision = errors.New("feature id hash collision")
)

// Compressed array errors.
var (
	// ErrInvalidBitsPerKey is returned when bits-per-key is zero or wider than supported.
	ErrInvalidBitsPerKey = errors.New("invalid bits per key")
	// ErrValueOverflow is returned when a value does not fit into the declared bits-per-key.
	ErrValueOverflow = errors.New("value does not fit into bits per key")
	// ErrRawArrayMismatch is returned when packed keys cannot be reinterpreted as a raw array of the requested width.
	ErrRawArrayMismatch = errors.New("cannot be interpreted as raw array")
	// ErrDecodeWidth is returned when the requested decode width is narrower than bits-per-key.
	ErrDecodeWidth = errors.New("decode type is narrower than bits per key")
)

// Quantization and hashing errors.
var (
	// ErrTooManyBorders is returned when a border grid needs more than 8 bits per bin index.
	ErrTooManyBorders = errors.New("too many borders for quantized float column")
	// ErrBordersNotSorted is returned when the border grid is not strictly increasing.
	ErrBordersNotSorted = errors.New("borders must be strictly increasing")
)

// Serialization errors.
var (
	// ErrInvalidHeaderSize is returned when a column blob is shorter than its header.
	ErrInvalidHeaderSize = errors.New("invalid column header size")
	// ErrInvalidHeaderFlags is returned when the header magic or flags are malformed.
	ErrInvalidHeaderFlags = errors.New("invalid column header flags")
	// ErrInvalidPayloadSize is returned when the payload length disagrees with the header.
	ErrInvalidPayloadSize = errors.New("invalid column payload size")
	// ErrChecksumMismatch is returned when the decoded payload checksum differs from the header.
	ErrChecksumMismatch = errors.New("column payload checksum mismatch")
)

// Metric errors.
var (
	// ErrInvalidRange is returned when [begin, end) does not fit the input arrays.
	ErrInvalidRange = errors.New("invalid document range")
)
