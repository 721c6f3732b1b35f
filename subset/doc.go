// Package subset maps logical (dataset-order) positions to physical
// (storage-order) positions.
//
// An Indexing lets one backing buffer serve many logical orderings without
// copying: the full dataset, a train/test split, a bootstrap resample or a
// shuffled permutation are all Indexings over the same storage. Three
// representations are supported:
//
//   - Full: position i maps to i
//   - Blocks: a concatenation of contiguous physical ranges
//   - Indexed: an explicit physical index per logical position, which may repeat
//
// Indexings are immutable after construction and safe for concurrent use.
// They are shared by pointer between every column built over the same
// selection of rows.
//
// Array[T] is the read-only view of a []T through an Indexing.
package subset
