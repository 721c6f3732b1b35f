package compress

import "fmt"

// ZstdLevel trades Zstd compression speed for ratio.
type ZstdLevel uint8

const (
	// ZstdFastest suits bit-packed payloads, which leave little to find.
	ZstdFastest ZstdLevel = iota + 1
	// ZstdDefault is the general-purpose level.
	ZstdDefault
	// ZstdBetter spends more time on raw float payloads with repeated values.
	ZstdBetter
)

func (l ZstdLevel) String() string {
	switch l {
	case ZstdFastest:
		return "fastest"
	case ZstdDefault:
		return "default"
	case ZstdBetter:
		return "better"
	default:
		return fmt.Sprintf("ZstdLevel(%d)", uint8(l))
	}
}

func (l ZstdLevel) isValid() bool {
	return l >= ZstdFastest && l <= ZstdBetter
}

// ZstdCompressor compresses payloads with Zstandard at a fixed level.
//
// The implementation is selected at build time: pure Go by default, the cgo
// gozstd binding with the gozstd build tag. Frames decode the same way
// whatever level produced them.
type ZstdCompressor struct {
	level ZstdLevel
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec at ZstdDefault.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: ZstdDefault}
}

// NewZstdCompressorLevel creates a Zstd codec at level.
func NewZstdCompressorLevel(level ZstdLevel) (ZstdCompressor, error) {
	if !level.isValid() {
		return ZstdCompressor{}, fmt.Errorf("invalid zstd level: %s", level)
	}

	return ZstdCompressor{level: level}, nil
}

// Level returns the compression level.
func (c ZstdCompressor) Level() ZstdLevel {
	if !c.level.isValid() {
		return ZstdDefault
	}

	return c.level
}
