// Package featstore provides compact columnar storage for the feature
// columns of gradient boosting datasets.
//
// A dataset is a set of feature columns of one shared logical size. Each
// column is one of four physical encodings:
//
//   - Float: raw 32-bit floats
//   - HashedCategorical: raw 32-bit hashes of categorical strings
//   - QuantizedFloat: bin indices on a border grid, bit-packed
//   - PerfectHashedCategorical: dense category ids, bit-packed
//
// Columns are read through a subset indexing, so train/test splits and
// resamples reuse one backing buffer without copying. Dense arrays are only
// produced on request and in parallel.
//
// # Basic Usage
//
// Building columns:
//
//	import "github.com/arloliu/featstore"
//
//	exec := featstore.DefaultExecutor()
//	ids, _ := featstore.FeatureIDs("age", "city")
//
//	age, _ := featstore.NewFloatColumn(ids[0], []float32{31, 45, 22, 60})
//	city, _ := featstore.NewCategoricalColumn(ids[1], []string{"oslo", "rome", "oslo", "lima"}, exec)
//
//	cols, _ := featstore.NewColumns(age, city)
//
// Quantizing and splitting:
//
//	bins, _ := column.QuantizeFloatValues(age, []float32{30, 50}, exec)
//	train, _ := cols.Subset(subset.NewIndexed([]uint32{0, 2, 3}))
//
// Materializing and persisting:
//
//	values := bins.ExtractValues(exec)
//	blob, _ := featstore.Encode(age, exec)
//	restored, _ := featstore.Decode(blob)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column
// package, simplifying the most common use cases. For subset construction,
// custom executors and codec options use the column, subset and executor
// packages directly.
package featstore

import (
	"fmt"

	"github.com/arloliu/featstore/buffer"
	"github.com/arloliu/featstore/column"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/internal/collision"
	"github.com/arloliu/featstore/internal/hash"
	"github.com/arloliu/featstore/subset"
)

// DefaultExecutor returns an executor using every available CPU with the
// default partitioning.
func DefaultExecutor() *executor.LocalExecutor {
	exec, err := executor.NewLocalExecutor()
	if err != nil {
		// Default options are always valid.
		panic(err)
	}

	return exec
}

// FeatureID derives the feature id of a named feature.
//
// The id is a 32-bit fold of the xxHash64 of the name. Use FeatureIDs to
// derive ids for a whole dataset with collision detection.
func FeatureID(name string) uint32 {
	return hash.FeatureID(name)
}

// FeatureIDs derives feature ids for names, in order.
//
// Returns an error if a name is empty, repeated, or collides with another
// name's id.
func FeatureIDs(names ...string) ([]uint32, error) {
	tracker := collision.NewTracker()
	ids := make([]uint32, len(names))
	for i, name := range names {
		ids[i] = hash.FeatureID(name)
		if err := tracker.TrackFeature(name, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// NewFloatColumn creates a Float column that owns values and reads all of them.
//
// The slice is not copied; the caller must not modify it afterwards.
func NewFloatColumn(featureID uint32, values []float32) (*column.FloatValuesHolder, error) {
	return column.NewFloatValuesHolder(featureID, buffer.Owning(values), subset.NewFull(uint32(len(values))))
}

// NewCategoricalColumn hashes categorical string values into a
// HashedCategorical column that reads all of them.
func NewCategoricalColumn(featureID uint32, values []string, exec executor.Executor) (*column.HashedCatValuesHolder, error) {
	hashes := column.HashCategoricalValues(values, exec)
	return column.NewHashedCatValuesHolder(featureID, buffer.Owning(hashes), subset.NewFull(uint32(len(hashes))))
}

// NewColumns collects holders into a column collection.
//
// Returns an error if two holders share a feature id or their sizes differ.
func NewColumns(holders ...column.FeatureValuesHolder) (*column.Columns, error) {
	cols, err := column.NewColumns()
	if err != nil {
		return nil, err
	}
	for _, h := range holders {
		if err := cols.Add(h); err != nil {
			return nil, fmt.Errorf("featstore: %w", err)
		}
	}

	return cols, nil
}

// Encode serializes a column with the default payload compression of its
// type: Zstd for raw columns, LZ4 for bit-packed ones.
//
// Use column.Encode directly to choose another compression or byte order.
func Encode(h column.FeatureValuesHolder, exec executor.Executor) ([]byte, error) {
	return column.Encode(h, exec)
}

// Decode restores a column serialized by Encode or column.Encode.
func Decode(data []byte) (column.FeatureValuesHolder, error) {
	return column.Decode(data)
}
