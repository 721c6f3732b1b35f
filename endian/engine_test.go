package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	var probe uint32 = 0x01020304
	first := (*[4]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.Equal(binary.BigEndian, CheckEndianness())
		require.True(IsNativeBigEndian())
		require.False(IsNativeLittleEndian())
	case 0x04:
		require.Equal(binary.LittleEndian, CheckEndianness())
		require.True(IsNativeLittleEndian())
		require.False(IsNativeBigEndian())
	default:
		require.Failf("unexpected byte", "got: %v", first)
	}
}

func TestGetNativeEngine(t *testing.T) {
	require := require.New(t)

	engine := GetNativeEngine()
	require.True(CompareNativeEndian(engine))

	// Writing with the native engine must match the in-memory layout.
	var v uint32 = 0xdeadbeef
	buf := engine.AppendUint32(nil, v)
	mem := (*[4]byte)(unsafe.Pointer(&v))
	require.Equal(mem[:], buf)
}

func TestEngines(t *testing.T) {
	require := require.New(t)

	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal([]byte{0x04, 0x03, 0x02, 0x01}, le.AppendUint32(nil, 0x01020304))
	require.Equal([]byte{0x01, 0x02, 0x03, 0x04}, be.AppendUint32(nil, 0x01020304))
	require.NotEqual(CompareNativeEndian(le), CompareNativeEndian(be))
}
