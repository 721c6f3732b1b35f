package column

import (
	"fmt"
	"math"

	"github.com/arloliu/featstore/buffer"
	"github.com/arloliu/featstore/compress"
	"github.com/arloliu/featstore/compressed"
	"github.com/arloliu/featstore/endian"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/format"
	"github.com/arloliu/featstore/internal/hash"
	"github.com/arloliu/featstore/internal/options"
	"github.com/arloliu/featstore/internal/pool"
	"github.com/arloliu/featstore/section"
	"github.com/arloliu/featstore/subset"
)

type encodeConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload codec. The default depends on the
// column type, see compress.DefaultCompression.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.Named("compression", func(c *encodeConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian writes the header and payload big-endian.
func WithBigEndian() EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		c.bigEndian = true
	})
}

// Encode serializes the logical values of h into a column blob: a
// section.HeaderSize header followed by the compressed payload.
//
// The blob stores values in logical order, so a column decoded from it is
// dense and reads through a full indexing.
func Encode(h FeatureValuesHolder, exec executor.Executor, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{compression: compress.DefaultCompression(h.Type())}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hdr := section.NewColumnHeader(h.Type(), cfg.compression, h.ID(), h.Size())
	if cfg.bigEndian {
		hdr.Flag.WithBigEndian()
	}
	engine := hdr.Flag.GetEndianEngine()

	bb := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(bb)

	switch holder := h.(type) {
	case *FloatValuesHolder:
		values, cleanup := pool.GetFloat32Slice(int(holder.Size()))
		defer cleanup()
		holder.ArrayData().ExtractInto(values, exec)

		bb.Grow(len(values) * 4)
		for _, v := range values {
			bb.B = engine.AppendUint32(bb.B, math.Float32bits(v))
		}
	case *HashedCatValuesHolder:
		values, cleanup := pool.GetUint32Slice(int(holder.Size()))
		defer cleanup()
		holder.ArrayData().ExtractInto(values, exec)

		appendUint32s(bb, engine, values)
	case *QuantizedFloatValuesHolder:
		words, err := denseWords(holder.CompressedData(), exec)
		if err != nil {
			return nil, err
		}
		hdr.BitsPerKey = holder.BitsPerKey()
		appendWords(bb, engine, words)
	case *QuantizedCatValuesHolder:
		words, err := denseWords(holder.CompressedData(), exec)
		if err != nil {
			return nil, err
		}
		hdr.BitsPerKey = holder.BitsPerKey()
		appendWords(bb, engine, words)
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", errs.ErrInvalidFeatureType, h)
	}

	codec, err := compress.ForColumn(h.Type(), cfg.compression)
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("feature %d: compress payload: %w", h.ID(), err)
	}

	hdr.Checksum = hash.Checksum(bb.Bytes())
	hdr.RawSize = uint32(bb.Len())
	hdr.StoredSize = uint32(len(stored))

	// stored may alias the pooled buffer, copy before it is returned.
	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = append(out, hdr.Bytes()...)
	out = append(out, stored...)

	return out, nil
}

// denseWords returns the packed words of the view in logical order.
func denseWords(view compressed.SubsetView, exec executor.Executor) ([]uint64, error) {
	arr := view.Array()
	if view.Indexing().IsFull() && view.Size() == arr.Size() {
		return arr.Words(), nil
	}

	keys, cleanup := pool.GetUint32Slice(int(view.Size()))
	defer cleanup()
	exec.ExecRange(len(keys), 0, func(begin, end int) {
		view.ForEachInRange(uint32(begin), uint32(end), func(i uint32, key uint64) {
			keys[i] = uint32(key)
		})
	})

	dense, err := compressed.FromValues(keys, arr.BitsPerKey())
	if err != nil {
		return nil, err
	}

	return dense.Words(), nil
}

func appendUint32s(bb *pool.ByteBuffer, engine endian.EndianEngine, values []uint32) {
	bb.Grow(len(values) * 4)
	for _, v := range values {
		bb.B = engine.AppendUint32(bb.B, v)
	}
}

func appendWords(bb *pool.ByteBuffer, engine endian.EndianEngine, words []uint64) {
	bb.Grow(len(words) * 8)
	for _, w := range words {
		bb.B = engine.AppendUint64(bb.B, w)
	}
}

// Decode restores a column from a blob produced by Encode. data must hold
// exactly one blob.
func Decode(data []byte) (FeatureValuesHolder, error) {
	h, n, err := decodeNext(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayloadSize, len(data)-n)
	}

	return h, nil
}

// decodeNext decodes the blob at the start of data and returns the number of
// bytes it occupies.
func decodeNext(data []byte) (FeatureValuesHolder, int, error) {
	hdr, err := section.ParseColumnHeader(data)
	if err != nil {
		return nil, 0, err
	}

	end := section.HeaderSize + int(hdr.StoredSize)
	if len(data) < end {
		return nil, 0, fmt.Errorf("%w: header declares %d bytes, have %d",
			errs.ErrInvalidPayloadSize, hdr.StoredSize, len(data)-section.HeaderSize)
	}

	codec, err := compress.GetCodec(hdr.Flag.Compression())
	if err != nil {
		return nil, 0, err
	}
	payload, err := codec.Decompress(data[section.HeaderSize:end])
	if err != nil {
		return nil, 0, fmt.Errorf("feature %d: decompress payload: %w", hdr.FeatureID, err)
	}
	if len(payload) != int(hdr.RawSize) {
		return nil, 0, fmt.Errorf("%w: decompressed %d bytes, header declares %d",
			errs.ErrInvalidPayloadSize, len(payload), hdr.RawSize)
	}
	if hash.Checksum(payload) != hdr.Checksum {
		return nil, 0, fmt.Errorf("feature %d: %w", hdr.FeatureID, errs.ErrChecksumMismatch)
	}

	h, err := decodePayload(&hdr, payload)
	if err != nil {
		return nil, 0, err
	}

	return h, end, nil
}

func decodePayload(hdr *section.ColumnHeader, payload []byte) (FeatureValuesHolder, error) {
	engine := hdr.Flag.GetEndianEngine()
	idx := subset.NewFull(hdr.Count)
	count := int(hdr.Count)

	switch typ := hdr.Flag.Type(); typ {
	case format.TypeFloat:
		if len(payload) != count*4 {
			return nil, payloadSizeError(hdr, count*4, len(payload))
		}
		values := make([]float32, count)
		for i := range values {
			values[i] = math.Float32frombits(engine.Uint32(payload[i*4:]))
		}

		return NewFloatValuesHolder(hdr.FeatureID, buffer.Owning(values), idx)
	case format.TypeHashedCategorical:
		if len(payload) != count*4 {
			return nil, payloadSizeError(hdr, count*4, len(payload))
		}
		values := make([]uint32, count)
		for i := range values {
			values[i] = engine.Uint32(payload[i*4:])
		}

		return NewHashedCatValuesHolder(hdr.FeatureID, buffer.Owning(values), idx)
	case format.TypeQuantizedFloat, format.TypePerfectHashedCategorical:
		if len(payload)%8 != 0 {
			return nil, payloadSizeError(hdr, len(payload)/8*8, len(payload))
		}
		words := make([]uint64, len(payload)/8)
		for i := range words {
			words[i] = engine.Uint64(payload[i*8:])
		}
		arr, err := compressed.FromWords(hdr.Count, hdr.BitsPerKey, words)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", hdr.FeatureID, err)
		}
		if typ == format.TypeQuantizedFloat {
			return NewQuantizedFloatValuesHolder(hdr.FeatureID, arr, idx)
		}

		return NewQuantizedCatValuesHolder(hdr.FeatureID, arr, idx)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidFeatureType, typ)
	}
}

func payloadSizeError(hdr *section.ColumnHeader, want, got int) error {
	return fmt.Errorf("feature %d: %w: want %d bytes, got %d", hdr.FeatureID, errs.ErrInvalidPayloadSize, want, got)
}

// EncodeColumns serializes every column of c, in insertion order, as
// concatenated blobs.
func EncodeColumns(c *Columns, exec executor.Executor, opts ...EncodeOption) ([]byte, error) {
	var out []byte
	for _, id := range c.order {
		blob, err := Encode(c.holders[id], exec, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, blob...)
	}

	return out, nil
}

// DecodeColumns restores a collection from the output of EncodeColumns.
func DecodeColumns(data []byte, opts ...ColumnsOption) (*Columns, error) {
	c, err := NewColumns(opts...)
	if err != nil {
		return nil, err
	}

	for len(data) > 0 {
		h, n, err := decodeNext(data)
		if err != nil {
			return nil, err
		}
		if err := c.Add(h); err != nil {
			return nil, err
		}
		data = data[n:]
	}

	return c, nil
}
