package compress

import "github.com/arloliu/featstore/format"

// DefaultCompression returns the payload compression of columns of typ when
// none is requested.
//
// Raw columns repeat values and bytes often enough to pay for Zstd.
// Bit-packed columns are already dense, so LZ4 keeps reloads cheap.
func DefaultCompression(typ format.FeatureValuesType) format.CompressionType {
	if typ.IsCompressed() {
		return format.CompressionLZ4
	}

	return format.CompressionZstd
}

// ForColumn returns the codec that compresses payloads of typ columns with
// compressionType.
//
// The choice only tunes encoding effort: every codec returned here decodes
// with GetCodec(compressionType).
func ForColumn(typ format.FeatureValuesType, compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionZstd:
		switch {
		case typ.IsCompressed():
			return ZstdCompressor{level: ZstdFastest}, nil
		case typ == format.TypeFloat:
			return ZstdCompressor{level: ZstdBetter}, nil
		}
	case format.CompressionS2:
		if !typ.IsCompressed() {
			return NewS2BetterCompressor(), nil
		}
	}

	return GetCodec(compressionType)
}
