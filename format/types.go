package format

type (
	// FeatureValuesType identifies the physical encoding of a feature column.
	FeatureValuesType uint8
	// CompressionType identifies the codec applied to a serialized column payload.
	CompressionType uint8
)

const (
	TypeFloat                    FeatureValuesType = 0x1 // TypeFloat stores 32 bits per value.
	TypeQuantizedFloat           FeatureValuesType = 0x2 // TypeQuantizedFloat stores at most 8 bits per value (bin index on a border grid).
	TypeHashedCategorical        FeatureValuesType = 0x3 // TypeHashedCategorical stores 32-bit hashes of the original strings.
	TypePerfectHashedCategorical FeatureValuesType = 0x4 // TypePerfectHashedCategorical stores dense ids after perfect hashing.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (t FeatureValuesType) String() string {
	switch t {
	case TypeFloat:
		return "Float"
	case TypeQuantizedFloat:
		return "QuantizedFloat"
	case TypeHashedCategorical:
		return "HashedCategorical"
	case TypePerfectHashedCategorical:
		return "PerfectHashedCategorical"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the four known column encodings.
func (t FeatureValuesType) IsValid() bool {
	return t >= TypeFloat && t <= TypePerfectHashedCategorical
}

// IsCompressed reports whether columns of this type are stored bit-packed.
func (t FeatureValuesType) IsCompressed() bool {
	return t == TypeQuantizedFloat || t == TypePerfectHashedCategorical
}

// IsCategorical reports whether the column holds categorical values.
func (t FeatureValuesType) IsCategorical() bool {
	return t == TypeHashedCategorical || t == TypePerfectHashedCategorical
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
