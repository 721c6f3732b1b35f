package subset

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/arloliu/featstore/errs"
)

// Kind is the representation of an Indexing.
type Kind uint8

const (
	KindFull Kind = iota + 1
	KindBlocks
	KindIndexed
)

func (k Kind) String() string {
	switch k {
	case KindFull:
		return "Full"
	case KindBlocks:
		return "Blocks"
	case KindIndexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Block is the physical range [Begin, End).
type Block struct {
	Begin uint32
	End   uint32
}

// Len returns the number of positions in the block.
func (b Block) Len() uint32 {
	return b.End - b.Begin
}

// Indexing maps logical positions [0, Size()) to physical positions.
type Indexing struct {
	kind    Kind
	size    uint32
	blocks  []Block
	starts  []uint32 // logical start of each block
	indices []uint32
}

// NewFull returns the identity indexing over size positions.
func NewFull(size uint32) *Indexing {
	return &Indexing{kind: KindFull, size: size}
}

// NewBlocks returns an indexing that visits each block in order.
//
// Empty blocks are dropped.
func NewBlocks(blocks []Block) (*Indexing, error) {
	idx := &Indexing{kind: KindBlocks}

	var logical uint64
	for i, b := range blocks {
		if b.End < b.Begin {
			return nil, fmt.Errorf("%w: block %d has end %d before begin %d", errs.ErrInvalidBlocks, i, b.End, b.Begin)
		}
		if b.Len() == 0 {
			continue
		}

		idx.blocks = append(idx.blocks, b)
		idx.starts = append(idx.starts, uint32(logical))
		logical += uint64(b.Len())
		if logical > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: total size exceeds uint32", errs.ErrInvalidBlocks)
		}
	}
	idx.size = uint32(logical)

	return idx, nil
}

// NewIndexed returns an indexing with an explicit physical index per position.
//
// The indexing takes ownership of indices.
func NewIndexed(indices []uint32) *Indexing {
	return &Indexing{kind: KindIndexed, size: uint32(len(indices)), indices: indices}
}

// FromBitmap returns an indexing that selects the rows set in bm, in
// ascending order. It is the usual way to express a train/test split or a
// filtered row selection.
func FromBitmap(bm *roaring.Bitmap) *Indexing {
	if bm == nil {
		return NewIndexed(nil)
	}

	return NewIndexed(bm.ToArray())
}

// Kind returns the representation of the indexing.
func (s *Indexing) Kind() Kind {
	return s.kind
}

// Size returns the number of logical positions.
func (s *Indexing) Size() uint32 {
	return s.size
}

// IsFull reports whether the indexing is the identity.
func (s *Indexing) IsFull() bool {
	return s.kind == KindFull
}

// Blocks returns the blocks of a KindBlocks indexing. The slice must not be modified.
func (s *Indexing) Blocks() []Block {
	return s.blocks
}

// Indices returns the explicit indices of a KindIndexed indexing. The slice must not be modified.
func (s *Indexing) Indices() []uint32 {
	return s.indices
}

// At returns the physical position of logical position i.
//
// It panics if i is out of range.
func (s *Indexing) At(i uint32) uint32 {
	if i >= s.size {
		panic(fmt.Sprintf("subset: logical index %d out of range [0, %d)", i, s.size))
	}

	switch s.kind {
	case KindFull:
		return i
	case KindIndexed:
		return s.indices[i]
	default:
		b := s.blockOf(i)
		return s.blocks[b].Begin + (i - s.starts[b])
	}
}

// blockOf returns the index of the block containing logical position i.
func (s *Indexing) blockOf(i uint32) int {
	return sort.Search(len(s.starts), func(b int) bool { return s.starts[b] > i }) - 1
}

// ForEach calls fn for every logical position in order.
func (s *Indexing) ForEach(fn func(logical, physical uint32)) {
	s.ForEachInRange(0, s.size, fn)
}

// ForEachInRange calls fn for logical positions [begin, end) in order.
func (s *Indexing) ForEachInRange(begin, end uint32, fn func(logical, physical uint32)) {
	if end > s.size {
		panic(fmt.Sprintf("subset: range end %d out of range [0, %d]", end, s.size))
	}
	if begin >= end {
		return
	}

	switch s.kind {
	case KindFull:
		for i := begin; i < end; i++ {
			fn(i, i)
		}
	case KindIndexed:
		for i := begin; i < end; i++ {
			fn(i, s.indices[i])
		}
	default:
		i := begin
		for b := s.blockOf(begin); i < end; b++ {
			blk := s.blocks[b]
			physical := blk.Begin + (i - s.starts[b])
			blockEnd := min(end, s.starts[b]+blk.Len())
			for ; i < blockEnd; i++ {
				fn(i, physical)
				physical++
			}
		}
	}
}

// MaxPhysical returns the largest physical position, or false for an empty indexing.
func (s *Indexing) MaxPhysical() (uint32, bool) {
	if s.size == 0 {
		return 0, false
	}

	switch s.kind {
	case KindFull:
		return s.size - 1, true
	case KindBlocks:
		var m uint32
		for _, b := range s.blocks {
			m = max(m, b.End-1)
		}

		return m, true
	default:
		var m uint32
		for _, v := range s.indices {
			m = max(m, v)
		}

		return m, true
	}
}

// Validate checks that every physical position falls inside a backing
// buffer of physicalSize elements.
func (s *Indexing) Validate(physicalSize int) error {
	m, ok := s.MaxPhysical()
	if !ok {
		return nil
	}
	if int64(m) >= int64(physicalSize) {
		return fmt.Errorf("%w: physical index %d, backing size %d", errs.ErrSubsetOutOfRange, m, physicalSize)
	}

	return nil
}

// Compose returns the indexing that first applies dst and then src:
// Compose(src, dst).At(i) == src.At(dst.At(i)).
//
// src maps the logical positions of an existing column to storage; dst
// selects positions among them. The result shares src or dst when one of
// them is the identity and is materialized as KindIndexed otherwise.
func Compose(src, dst *Indexing) (*Indexing, error) {
	if src == nil || dst == nil {
		return nil, errs.ErrEmptySubsetIndexing
	}
	if err := dst.Validate(int(src.size)); err != nil {
		return nil, err
	}

	if src.IsFull() {
		return dst, nil
	}
	if dst.IsFull() && dst.size == src.size {
		return src, nil
	}

	indices := make([]uint32, dst.size)
	dst.ForEach(func(logical, physical uint32) {
		indices[logical] = src.At(physical)
	})

	return NewIndexed(indices), nil
}
