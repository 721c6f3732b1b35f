// Package compressed implements a bit-packed array of fixed-width unsigned
// integers.
//
// Keys are packed into 64-bit words without straddling word boundaries: a
// word holds 64/bitsPerKey keys and key j of a word occupies bits
// [j*bitsPerKey, (j+1)*bitsPerKey). When bitsPerKey is 8, 16 or 32 and the
// host is little-endian, the word storage is byte-for-byte a plain []uint8,
// []uint16 or []uint32, which RawSlice exposes without unpacking.
package compressed

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/arloliu/featstore/endian"
	"github.com/arloliu/featstore/errs"
)

// MaxBitsPerKey is the widest supported key.
const MaxBitsPerKey = 32

// Unsigned is the set of element types keys can be decoded into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Array stores Size() keys of BitsPerKey() bits each.
//
// An Array is filled through Set right after construction and treated as
// immutable once handed to a column holder; concurrent reads are safe.
type Array struct {
	words       []uint64
	size        uint32
	bitsPerKey  uint8
	keysPerWord uint8
	mask        uint64
}

// New allocates a zeroed array of size keys.
func New(size uint32, bitsPerKey uint8) (*Array, error) {
	if err := checkBitsPerKey(bitsPerKey); err != nil {
		return nil, err
	}

	kpw := 64 / bitsPerKey

	return &Array{
		words:       make([]uint64, wordCount(size, kpw)),
		size:        size,
		bitsPerKey:  bitsPerKey,
		keysPerWord: kpw,
		mask:        uint64(1)<<bitsPerKey - 1,
	}, nil
}

// FromValues packs values with the given key width.
func FromValues[T Unsigned](values []T, bitsPerKey uint8) (*Array, error) {
	if uint64(len(values)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("compressed: %d values exceed uint32 size", len(values))
	}

	arr, err := New(uint32(len(values)), bitsPerKey)
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		if err := arr.Set(uint32(i), uint64(v)); err != nil {
			return nil, err
		}
	}

	return arr, nil
}

// FromWords wraps already packed words, typically read back from a
// serialized column. The array takes ownership of words.
func FromWords(size uint32, bitsPerKey uint8, words []uint64) (*Array, error) {
	if err := checkBitsPerKey(bitsPerKey); err != nil {
		return nil, err
	}

	kpw := 64 / bitsPerKey
	if want := wordCount(size, kpw); len(words) != want {
		return nil, fmt.Errorf("compressed: %d keys of %d bits need %d words, got %d", size, bitsPerKey, want, len(words))
	}

	return &Array{
		words:       words,
		size:        size,
		bitsPerKey:  bitsPerKey,
		keysPerWord: kpw,
		mask:        uint64(1)<<bitsPerKey - 1,
	}, nil
}

func checkBitsPerKey(bitsPerKey uint8) error {
	if bitsPerKey == 0 || bitsPerKey > MaxBitsPerKey {
		return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidBitsPerKey, bitsPerKey, MaxBitsPerKey)
	}

	return nil
}

func wordCount(size uint32, keysPerWord uint8) int {
	return int((uint64(size) + uint64(keysPerWord) - 1) / uint64(keysPerWord))
}

// Size returns the number of keys.
func (a *Array) Size() uint32 {
	return a.size
}

// BitsPerKey returns the key width fixed at construction.
func (a *Array) BitsPerKey() uint8 {
	return a.bitsPerKey
}

// KeysPerWord returns how many keys share one 64-bit word.
func (a *Array) KeysPerWord() uint8 {
	return a.keysPerWord
}

// Words returns the packed storage. The slice must not be modified.
func (a *Array) Words() []uint64 {
	return a.words
}

// SizeInBytes returns the memory held by the packed storage.
func (a *Array) SizeInBytes() int {
	return len(a.words) * 8
}

// Get returns key i. It panics if i is out of range.
func (a *Array) Get(i uint32) uint64 {
	if i >= a.size {
		panic(fmt.Sprintf("compressed: index %d out of range [0, %d)", i, a.size))
	}

	w := i / uint32(a.keysPerWord)
	shift := (i % uint32(a.keysPerWord)) * uint32(a.bitsPerKey)

	return (a.words[w] >> shift) & a.mask
}

// Set stores v as key i.
func (a *Array) Set(i uint32, v uint64) error {
	if i >= a.size {
		return fmt.Errorf("compressed: index %d out of range [0, %d)", i, a.size)
	}
	if v > a.mask {
		return fmt.Errorf("%w: %d needs %d bits, have %d", errs.ErrValueOverflow, v, bits.Len64(v), a.bitsPerKey)
	}

	w := i / uint32(a.keysPerWord)
	shift := (i % uint32(a.keysPerWord)) * uint32(a.bitsPerKey)
	a.words[w] = a.words[w]&^(a.mask<<shift) | v<<shift

	return nil
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	cp := *a
	cp.words = append([]uint64(nil), a.words...)

	return &cp
}

// RawPtr returns the address of the packed storage, or nil when empty.
//
// The pointer is only meaningful as a plain array when CheckRawArray succeeds
// for the element type it is read as.
func (a *Array) RawPtr() unsafe.Pointer {
	if len(a.words) == 0 {
		return nil
	}

	return unsafe.Pointer(&a.words[0])
}

// BitWidth returns the width of T in bits.
func BitWidth[T Unsigned]() uint8 {
	var zero T
	return uint8(unsafe.Sizeof(zero) * 8)
}

// BitsForMaxValue returns the number of bits needed to store maxValue, at least 1.
func BitsForMaxValue(maxValue uint64) uint8 {
	return uint8(max(bits.Len64(maxValue), 1))
}

// CheckRawArray reports whether the packed storage can be read in place as a []T.
//
// It requires bitsPerKey to equal the width of T and a little-endian host.
func CheckRawArray[T Unsigned](a *Array) error {
	var zero T
	if a.bitsPerKey != BitWidth[T]() {
		return fmt.Errorf("%w of %T: bits per key is %d", errs.ErrRawArrayMismatch, zero, a.bitsPerKey)
	}
	if !endian.IsNativeLittleEndian() {
		return fmt.Errorf("%w of %T: host is not little-endian", errs.ErrRawArrayMismatch, zero)
	}

	return nil
}

// RawSlice returns the packed storage reinterpreted as a []T of Size()
// elements, without copying. The slice aliases the array and must not be
// modified.
func RawSlice[T Unsigned](a *Array) ([]T, error) {
	if err := CheckRawArray[T](a); err != nil {
		return nil, err
	}
	if a.size == 0 {
		return []T{}, nil
	}

	return unsafe.Slice((*T)(a.RawPtr()), a.size), nil
}

// Decode returns key i converted to R. R must be at least BitsPerKey() wide
// for the conversion to be lossless; see CheckDecodeWidth.
func Decode[R Unsigned](a *Array, i uint32) R {
	return R(a.Get(i))
}

// CheckDecodeWidth reports whether keys fit into R.
func CheckDecodeWidth[R Unsigned](a *Array) error {
	var zero R
	if BitWidth[R]() < a.bitsPerKey {
		return fmt.Errorf("%w: %T cannot hold %d-bit keys", errs.ErrDecodeWidth, zero, a.bitsPerKey)
	}

	return nil
}
