package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads with S2 block encoding.
//
// The better variant runs s2.EncodeBetter, which finds more of the long
// repeats of raw float and hash payloads. Both variants decode the same way.
type S2Compressor struct {
	better bool
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec using the fast block encoder.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// NewS2BetterCompressor creates an S2 codec using s2.EncodeBetter.
func NewS2BetterCompressor() S2Compressor {
	return S2Compressor{better: true}
}

// Compress compresses data into one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, s2.MaxEncodedLen(len(data)))
	if c.better {
		return s2.EncodeBetter(dst, data), nil
	}

	return s2.Encode(dst, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2: read column payload length: %w", err)
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("s2: decode column payload: %w", err)
	}

	return out, nil
}
