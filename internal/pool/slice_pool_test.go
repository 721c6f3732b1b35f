package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat32Slice(t *testing.T) {
	t.Run("returns slice with requested length", func(t *testing.T) {
		s, cleanup := GetFloat32Slice(100)
		defer cleanup()

		require.Len(t, s, 100)
	})

	t.Run("shrinks and grows", func(t *testing.T) {
		s, cleanup := GetFloat32Slice(1000)
		require.Len(t, s, 1000)
		cleanup()

		s, cleanup = GetFloat32Slice(3)
		require.Len(t, s, 3)
		cleanup()
	})

	t.Run("zero length", func(t *testing.T) {
		s, cleanup := GetFloat32Slice(0)
		defer cleanup()

		require.Empty(t, s)
	})
}

func TestGetUint32Slice(t *testing.T) {
	s, cleanup := GetUint32Slice(42)
	defer cleanup()

	require.Len(t, s, 42)
	for i := range s {
		s[i] = uint32(i)
	}
	require.Equal(t, uint32(41), s[41])
}
