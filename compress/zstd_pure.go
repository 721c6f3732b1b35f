//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("zstd: create pooled decoder: %v", err))
		}

		return decoder
	},
}

// zstdEncoderPools holds one encoder pool per ZstdLevel, indexed by level.
var zstdEncoderPools = [...]*sync.Pool{
	ZstdFastest: newZstdEncoderPool(zstd.SpeedFastest),
	ZstdDefault: newZstdEncoderPool(zstd.SpeedDefault),
	ZstdBetter:  newZstdEncoderPool(zstd.SpeedBetterCompression),
}

func newZstdEncoderPool(level zstd.EncoderLevel) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			// Column blobs carry their own xxHash64 checksum.
			encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level), zstd.WithEncoderCRC(false))
			if err != nil {
				panic(fmt.Sprintf("zstd: create pooled %s encoder: %v", level, err))
			}

			return encoder
		},
	}
}

// Compress compresses data with a pooled encoder of the codec's level.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	p := zstdEncoderPools[c.Level()]
	encoder, _ := p.Get().(*zstd.Encoder)
	defer p.Put(encoder)

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decodes a Zstd frame with a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: decode column payload: %w", err)
	}

	return out, nil
}
