package pool

import "sync"

// Scratch slice pools for materializing columns that are immediately
// serialized and discarded.
var (
	float32SlicePool = sync.Pool{
		New: func() any { return &[]float32{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetFloat32Slice returns a float32 slice of length size and a cleanup
// function that hands it back to the pool.
//
// The contents are unspecified; callers overwrite every element.
//
//	values, cleanup := pool.GetFloat32Slice(n)
//	defer cleanup()
func GetFloat32Slice(size int) ([]float32, func()) {
	return getSlice[float32](&float32SlicePool, size)
}

// GetUint32Slice returns a uint32 slice of length size and a cleanup
// function that hands it back to the pool.
func GetUint32Slice(size int) ([]uint32, func()) {
	return getSlice[uint32](&uint32SlicePool, size)
}

func getSlice[T any](p *sync.Pool, size int) ([]T, func()) {
	ptr, _ := p.Get().(*[]T)
	if cap(*ptr) < size {
		*ptr = make([]T, size)
	} else {
		*ptr = (*ptr)[:size]
	}

	return *ptr, func() { p.Put(ptr) }
}
