package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestCatValue(t *testing.T) {
	require := require.New(t)

	full := ID("test")
	require.Equal(uint32(full)^uint32(full>>32), CatValue("test"))
	require.Equal(CatValue("red"), CatValue("red"))
	require.NotEqual(CatValue("red"), CatValue("green"))
}

func TestFeatureID(t *testing.T) {
	require.Equal(t, CatValue("age"), FeatureID("age"))
	require.NotEqual(t, FeatureID("age"), FeatureID("income"))
}

func TestChecksum(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	require.Equal(t, xxhash.Sum64(data), Checksum(data))
	require.NotEqual(t, Checksum(data), Checksum(data[:4]))
}
