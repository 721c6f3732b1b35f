package column

import (
	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/executor"
)

// ParallelExtractValues decodes view into a dense slice in logical order.
//
// The logical range is split into the executor's blocks; each block
// resolves its positions through the subset, unpacks the keys and writes its
// own disjoint slice of the output, so the result does not depend on the
// number of workers. Keys are converted to R without range checks; callers
// choose R at least as wide as the key width.
func ParallelExtractValues[R compressed.Unsigned](view compressed.SubsetView, exec executor.Executor) []R {
	out := make([]R, view.Size())
	if len(out) == 0 {
		return out
	}

	if view.Indexing().IsFull() {
		if raw, err := compressed.RawSlice[R](view.Array()); err == nil {
			copy(out, raw)
			return out
		}
	}

	exec.ExecRange(len(out), 0, func(begin, end int) {
		view.ForEachInRange(uint32(begin), uint32(end), func(i uint32, key uint64) {
			out[i] = R(key)
		})
	})

	return out
}
