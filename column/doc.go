// Package column implements the feature column holders read by training and
// scoring.
//
// A holder pairs immutable backing data with a subset indexing. Four
// physical encodings share the FeatureValuesHolder contract:
//
//	Float                    ArrayValuesHolder[float32]      raw 32-bit floats
//	HashedCategorical        ArrayValuesHolder[uint32]       raw 32-bit string hashes
//	QuantizedFloat           CompressedValuesHolder[uint8]   bit-packed bin indices
//	PerfectHashedCategorical CompressedValuesHolder[uint32]  bit-packed dense category ids
//
// Every read goes through the subset indexing, so one backing buffer serves
// the full dataset, its train/test split and any number of resamples at the
// same time. Views returned by ArrayData and CompressedData never copy;
// ExtractValues is the only operation that materializes a dense array and it
// runs in parallel on a caller-provided executor.
//
// Holders are immutable after construction and safe for concurrent reads.
// They are always handled by pointer; copying a holder value is flagged by
// go vet.
package column
