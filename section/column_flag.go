package section

import (
	"fmt"

	"github.com/arloliu/featstore/endian"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/format"
)

// ColumnFlag holds the packed options and enum bytes of a column header.
type ColumnFlag struct {
	// Options is a packed field.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number, 0xEC10 for column blob v1.
	Options uint16

	// FeatureType is the format.FeatureValuesType of the column.
	FeatureType uint8
	// CompressionType is the format.CompressionType of the payload.
	CompressionType uint8
}

// NewColumnFlag creates a little-endian flag for the given column type and payload codec.
func NewColumnFlag(typ format.FeatureValuesType, compression format.CompressionType) ColumnFlag {
	return ColumnFlag{
		Options:         MagicColumnV1Opt,
		FeatureType:     uint8(typ),
		CompressionType: uint8(compression),
	}
}

// IsLittleEndian returns whether the payload is little-endian.
func (f ColumnFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f ColumnFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ColumnFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *ColumnFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f ColumnFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number bits of Options.
func (f ColumnFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Type returns the feature values type.
func (f ColumnFlag) Type() format.FeatureValuesType {
	return format.FeatureValuesType(f.FeatureType)
}

// Compression returns the payload compression type.
func (f ColumnFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// Validate checks the magic number, reserved bits and enum values.
func (f ColumnFlag) Validate() error {
	if f.GetMagicNumber() != MagicColumnV1Opt {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidHeaderFlags, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}
	if !f.Type().IsValid() {
		return fmt.Errorf("%w: feature type %d", errs.ErrInvalidHeaderFlags, f.FeatureType)
	}
	switch f.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: compression type %d", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}
