// Package buffer provides MaybeOwningArray, a read-mostly array that either
// owns its storage or views storage owned elsewhere.
//
// Raw feature columns are frequently backed by memory the column does not
// own (a memory-mapped pool, a slice shared by a full dataset and its
// resamples). MaybeOwningArray records which case applies so that ownership is
// explicit, and copying is only ever done through Clone.
package buffer

// MaybeOwningArray is either an owning allocation or a non-owning view.
//
// The zero value is an empty view. Values are small headers and may
// be passed by value; the elements are never duplicated implicitly.
type MaybeOwningArray[T any] struct {
	data   []T
	owning bool
}

// Owning wraps data that the array takes ownership of.
//
// The caller must not modify data afterwards.
func Owning[T any](data []T) MaybeOwningArray[T] {
	return MaybeOwningArray[T]{data: data, owning: true}
}

// View wraps data owned elsewhere. The owner must keep data alive and
// unmodified for as long as the view is used.
func View[T any](data []T) MaybeOwningArray[T] {
	return MaybeOwningArray[T]{data: data}
}

// Len returns the number of elements.
func (a MaybeOwningArray[T]) Len() int {
	return len(a.data)
}

// Data returns the elements. The slice must be treated as read-only.
func (a MaybeOwningArray[T]) Data() []T {
	return a.data
}

// At returns element i.
func (a MaybeOwningArray[T]) At(i int) T {
	return a.data[i]
}

// IsOwning reports whether the array owns its storage.
func (a MaybeOwningArray[T]) IsOwning() bool {
	return a.owning
}

// Clone returns an owning deep copy.
func (a MaybeOwningArray[T]) Clone() MaybeOwningArray[T] {
	if a.data == nil {
		return MaybeOwningArray[T]{owning: true}
	}

	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return Owning(cp)
}
