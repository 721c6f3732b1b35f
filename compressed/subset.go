package compressed

import "github.com/arloliu/featstore/subset"

// SubsetView is a read-only view of packed keys through a subset indexing.
// Positions are logical; every access still unpacks the key.
type SubsetView struct {
	arr *Array
	idx *subset.Indexing
}

// NewSubsetView creates a view of arr through idx.
func NewSubsetView(arr *Array, idx *subset.Indexing) SubsetView {
	return SubsetView{arr: arr, idx: idx}
}

// Array returns the packed storage.
func (v SubsetView) Array() *Array {
	return v.arr
}

// Indexing returns the subset indexing.
func (v SubsetView) Indexing() *subset.Indexing {
	return v.idx
}

// Size returns the number of logical positions.
func (v SubsetView) Size() uint32 {
	return v.idx.Size()
}

// BitsPerKey returns the key width of the packed storage.
func (v SubsetView) BitsPerKey() uint8 {
	return v.arr.bitsPerKey
}

// At returns the key at logical position i.
func (v SubsetView) At(i uint32) uint64 {
	return v.arr.Get(v.idx.At(i))
}

// ForEachInRange calls fn with the keys of logical positions [begin, end).
func (v SubsetView) ForEachInRange(begin, end uint32, fn func(i uint32, key uint64)) {
	v.idx.ForEachInRange(begin, end, func(logical, physical uint32) {
		fn(logical, v.arr.Get(physical))
	})
}

// ForEach calls fn with every key in logical order.
func (v SubsetView) ForEach(fn func(i uint32, key uint64)) {
	v.ForEachInRange(0, v.idx.Size(), fn)
}
