package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/arloliu/featstore/format"
	"github.com/stretchr/testify/require"
)

var errRoundTrip = errors.New("round trip mismatch")

func allCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

// floatColumnPayload mimics a raw float column with few distinct values.
func floatColumnPayload(n int) []byte {
	buf := make([]byte, 0, n*4)
	for i := range n {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(i%7)*0.5))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for typ := range allCodecs() {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"tiny":         {0x01},
		"float column": floatColumnPayload(4096),
		"zeros":        make([]byte, 10000),
	}

	for typ, codec := range allCodecs() {
		for name, payload := range payloads {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(payload)
				require.NoError(t, err)

				restored, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(payload, restored))
			})
		}
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for typ, codec := range allCodecs() {
		t.Run(typ.String(), func(t *testing.T) {
			packed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, packed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestCompressingCodecs_ShrinkRepetitivePayload(t *testing.T) {
	payload := floatColumnPayload(16384)

	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			packed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, Ratio(len(payload), len(packed)), 0.5)
		})
	}
}

func TestCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22}

	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpCompressor_Aliases(t *testing.T) {
	data := []byte("verbatim")
	codec := NewNoOpCompressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &packed[0])
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := floatColumnPayload(2048)

	for typ, codec := range allCodecs() {
		t.Run(typ.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)

			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()

					packed, err := codec.Compress(payload)
					if err != nil {
						errCh <- err
						return
					}
					restored, err := codec.Decompress(packed)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(payload, restored) {
						errCh <- errRoundTrip
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	require.Equal(t, 0.0, Ratio(0, 10))
	require.Equal(t, 0.25, Ratio(100, 25))
}
