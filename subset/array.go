package subset

import "github.com/arloliu/featstore/executor"

// Array is a read-only view of src through an Indexing.
//
// Constructing and reading an Array never copies src; Extract and
// ExtractInto are the explicit materialization points.
type Array[T any] struct {
	src []T
	idx *Indexing
}

// NewArray creates a view of src through idx.
func NewArray[T any](src []T, idx *Indexing) Array[T] {
	return Array[T]{src: src, idx: idx}
}

// Size returns the number of logical elements.
func (a Array[T]) Size() uint32 {
	return a.idx.Size()
}

// Indexing returns the indexing of the view.
func (a Array[T]) Indexing() *Indexing {
	return a.idx
}

// At returns logical element i.
func (a Array[T]) At(i uint32) T {
	return a.src[a.idx.At(i)]
}

// ForEach calls fn for every logical element in order.
func (a Array[T]) ForEach(fn func(i uint32, v T)) {
	a.idx.ForEach(func(logical, physical uint32) {
		fn(logical, a.src[physical])
	})
}

// ParallelForEach calls fn for every logical element, splitting the range
// across exec. Calls for different blocks run concurrently.
func (a Array[T]) ParallelForEach(exec executor.Executor, fn func(i uint32, v T)) {
	exec.ExecRange(int(a.idx.Size()), 0, func(begin, end int) {
		a.idx.ForEachInRange(uint32(begin), uint32(end), func(logical, physical uint32) {
			fn(logical, a.src[physical])
		})
	})
}

// Extract returns a newly allocated, densely ordered copy of the view.
func (a Array[T]) Extract(exec executor.Executor) []T {
	dst := make([]T, a.idx.Size())
	a.ExtractInto(dst, exec)

	return dst
}

// ExtractInto writes the view into dst, which must have length Size().
func (a Array[T]) ExtractInto(dst []T, exec executor.Executor) {
	if len(dst) != int(a.idx.Size()) {
		panic("subset: destination length does not match subset size")
	}

	if a.idx.IsFull() {
		copy(dst, a.src[:len(dst)])
		return
	}

	a.ParallelForEach(exec, func(i uint32, v T) {
		dst[i] = v
	})
}
