package section

import (
	"fmt"

	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/format"
)

// ColumnHeader is the fixed 32-byte header of a serialized feature column.
type ColumnHeader struct {
	// Flag carries magic, endianness, feature type and compression. byte offset 0-3
	Flag ColumnFlag
	// FeatureID identifies the feature. byte offset 4-7
	FeatureID uint32
	// Count is the number of values in the payload. byte offset 8-11
	Count uint32
	// BitsPerKey is the key width of compressed columns, 0 for raw columns. byte offset 12
	BitsPerKey uint8
	// Checksum is the xxHash64 of the uncompressed payload. byte offset 16-23
	Checksum uint64
	// RawSize is the uncompressed payload length. byte offset 24-27
	RawSize uint32
	// StoredSize is the payload length following the header. byte offset 28-31
	StoredSize uint32
}

// NewColumnHeader creates a little-endian header. Sizes and checksum are
// filled in once the payload is known.
func NewColumnHeader(typ format.FeatureValuesType, compression format.CompressionType, featureID, count uint32) *ColumnHeader {
	return &ColumnHeader{
		Flag:      NewColumnFlag(typ, compression),
		FeatureID: featureID,
		Count:     count,
	}
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *ColumnHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	// Options is always little-endian; it tells the order of everything else.
	h.Flag.Options = uint16(data[optionsOffset]) | uint16(data[optionsOffset+1])<<8
	h.Flag.FeatureType = data[typeOffset]
	h.Flag.CompressionType = data[compressionOffset]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.FeatureID = engine.Uint32(data[featureIDOffset:])
	h.Count = engine.Uint32(data[countOffset:])
	h.BitsPerKey = data[bitsPerKeyOffset]
	h.Checksum = engine.Uint64(data[checksumOffset:])
	h.RawSize = engine.Uint32(data[rawSizeOffset:])
	h.StoredSize = engine.Uint32(data[storedSizeOffset:])

	return nil
}

// Bytes serializes the header.
func (h *ColumnHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[optionsOffset] = byte(h.Flag.Options)
	b[optionsOffset+1] = byte(h.Flag.Options >> 8)
	b[typeOffset] = h.Flag.FeatureType
	b[compressionOffset] = h.Flag.CompressionType
	engine.PutUint32(b[featureIDOffset:], h.FeatureID)
	engine.PutUint32(b[countOffset:], h.Count)
	b[bitsPerKeyOffset] = h.BitsPerKey
	engine.PutUint64(b[checksumOffset:], h.Checksum)
	engine.PutUint32(b[rawSizeOffset:], h.RawSize)
	engine.PutUint32(b[storedSizeOffset:], h.StoredSize)

	return b
}

// ParseColumnHeader parses the header at the start of data.
func ParseColumnHeader(data []byte) (ColumnHeader, error) {
	if len(data) < HeaderSize {
		return ColumnHeader{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := ColumnHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return ColumnHeader{}, err
	}

	return h, nil
}
