package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwningAndView(t *testing.T) {
	require := require.New(t)

	src := []float32{1, 2, 3}

	owned := Owning(src)
	require.True(owned.IsOwning())
	require.Equal(3, owned.Len())
	require.Equal(float32(2), owned.At(1))

	view := View(src)
	require.False(view.IsOwning())
	require.Same(&src[0], &view.Data()[0], "view must not copy")
}

func TestClone(t *testing.T) {
	require := require.New(t)

	src := []uint32{7, 8, 9}
	view := View(src)

	cp := view.Clone()
	require.True(cp.IsOwning())
	require.Equal(src, cp.Data())

	src[0] = 100
	require.Equal(uint32(7), cp.At(0), "clone must be independent of the source")
	require.Equal(uint32(100), view.At(0))
}

func TestZeroValue(t *testing.T) {
	var a MaybeOwningArray[float32]
	require.Equal(t, 0, a.Len())
	require.False(t, a.IsOwning())

	cp := a.Clone()
	require.True(t, cp.IsOwning())
	require.Equal(t, 0, cp.Len())
}
