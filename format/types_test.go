package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatureValuesType_String(t *testing.T) {
	tests := []struct {
		typ  FeatureValuesType
		want string
	}{
		{TypeFloat, "Float"},
		{TypeQuantizedFloat, "QuantizedFloat"},
		{TypeHashedCategorical, "HashedCategorical"},
		{TypePerfectHashedCategorical, "PerfectHashedCategorical"},
		{FeatureValuesType(0), "Unknown"},
		{FeatureValuesType(0xff), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestFeatureValuesType_Predicates(t *testing.T) {
	require := require.New(t)

	require.True(TypeFloat.IsValid())
	require.True(TypePerfectHashedCategorical.IsValid())
	require.False(FeatureValuesType(0).IsValid())
	require.False(FeatureValuesType(5).IsValid())

	require.False(TypeFloat.IsCompressed())
	require.True(TypeQuantizedFloat.IsCompressed())
	require.False(TypeHashedCategorical.IsCompressed())
	require.True(TypePerfectHashedCategorical.IsCompressed())

	require.False(TypeFloat.IsCategorical())
	require.False(TypeQuantizedFloat.IsCategorical())
	require.True(TypeHashedCategorical.IsCategorical())
	require.True(TypePerfectHashedCategorical.IsCategorical())
}

func TestCompressionType_String(t *testing.T) {
	require := require.New(t)

	require.Equal("None", CompressionNone.String())
	require.Equal("Zstd", CompressionZstd.String())
	require.Equal("S2", CompressionS2.String())
	require.Equal("LZ4", CompressionLZ4.String())
	require.Equal("Unknown", CompressionType(0).String())
}
