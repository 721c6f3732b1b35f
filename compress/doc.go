// Package compress provides the payload codecs used when feature columns are
// serialized.
//
// A serialized column is a fixed header followed by the materialized column
// payload: raw float32 bits, raw 32-bit categorical hashes or the 64-bit words
// of a bit-packed compressed array. The payload is run through one of the
// codecs in this package:
//
//   - None: payload stored verbatim
//   - Zstd: best ratio, the default for raw float and hash columns
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression, the default for bit-packed columns
//
// Quantized columns are already dense (one bin index per bits-per-key), so
// general-purpose compression mostly pays off on raw float columns with
// repeated values and on categorical hashes with low cardinality.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//
// Column encoders use ForColumn instead, which tunes the encoder effort to
// the column type (a faster Zstd level for bit-packed words, EncodeBetter for
// raw S2 payloads). The output still decodes with GetCodec.
//
// # Zstd implementations
//
// The default Zstd codec is the pure Go klauspost/compress implementation.
// Building with the gozstd tag switches to the cgo valyala/gozstd binding.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally.
package compress
