//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// gozstdLevels maps ZstdLevel to libzstd levels, close to the speeds of the
// pure Go encoder levels.
var gozstdLevels = [...]int{
	ZstdFastest: 1,
	ZstdDefault: 3,
	ZstdBetter:  7,
}

// Compress compresses data with the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevels[c.Level()]), nil
}

// Decompress decodes a Zstd frame with the cgo zstd binding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd: decode column payload: %w", err)
	}

	return out, nil
}
