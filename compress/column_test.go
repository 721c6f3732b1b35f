package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/featstore/format"
)

func TestDefaultCompression(t *testing.T) {
	require.Equal(t, format.CompressionZstd, DefaultCompression(format.TypeFloat))
	require.Equal(t, format.CompressionZstd, DefaultCompression(format.TypeHashedCategorical))
	require.Equal(t, format.CompressionLZ4, DefaultCompression(format.TypeQuantizedFloat))
	require.Equal(t, format.CompressionLZ4, DefaultCompression(format.TypePerfectHashedCategorical))
}

func TestForColumn(t *testing.T) {
	tests := []struct {
		typ         format.FeatureValuesType
		compression format.CompressionType
		want        Codec
	}{
		{format.TypeFloat, format.CompressionZstd, ZstdCompressor{level: ZstdBetter}},
		{format.TypeHashedCategorical, format.CompressionZstd, ZstdCompressor{level: ZstdDefault}},
		{format.TypeQuantizedFloat, format.CompressionZstd, ZstdCompressor{level: ZstdFastest}},
		{format.TypeFloat, format.CompressionS2, S2Compressor{better: true}},
		{format.TypePerfectHashedCategorical, format.CompressionS2, S2Compressor{}},
		{format.TypeQuantizedFloat, format.CompressionLZ4, NewLZ4Compressor()},
		{format.TypeFloat, format.CompressionNone, NewNoOpCompressor()},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.compression.String(), func(t *testing.T) {
			codec, err := ForColumn(tt.typ, tt.compression)
			require.NoError(t, err)
			require.Equal(t, tt.want, codec)

			// Tuned encoders stay readable by the plain codec of the same type.
			payload := floatColumnPayload(3000)
			packed, err := codec.Compress(payload)
			require.NoError(t, err)

			plain, err := GetCodec(tt.compression)
			require.NoError(t, err)
			restored, err := plain.Decompress(packed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}

	_, err := ForColumn(format.TypeFloat, format.CompressionType(0x7f))
	require.Error(t, err)
}

func TestZstdLevels(t *testing.T) {
	payload := floatColumnPayload(8192)

	for _, level := range []ZstdLevel{ZstdFastest, ZstdDefault, ZstdBetter} {
		t.Run(level.String(), func(t *testing.T) {
			codec, err := NewZstdCompressorLevel(level)
			require.NoError(t, err)
			require.Equal(t, level, codec.Level())

			packed, err := codec.Compress(payload)
			require.NoError(t, err)
			restored, err := NewZstdCompressor().Decompress(packed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}

	_, err := NewZstdCompressorLevel(ZstdLevel(0))
	require.Error(t, err)
	_, err = NewZstdCompressorLevel(ZstdBetter + 1)
	require.Error(t, err)

	require.Equal(t, ZstdDefault, ZstdCompressor{}.Level())
}

func TestS2Better_RoundTrip(t *testing.T) {
	payload := floatColumnPayload(4096)

	packed, err := NewS2BetterCompressor().Compress(payload)
	require.NoError(t, err)
	restored, err := NewS2Compressor().Decompress(packed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, restored))
}
