package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// CatValue folds the xxHash64 of a categorical string value into 32 bits.
//
// Both halves are mixed so values that differ only in the high half of the
// 64-bit digest still map to different hashes.
func CatValue(value string) uint32 {
	h := xxhash.Sum64String(value)
	return uint32(h) ^ uint32(h>>32)
}

// FeatureID derives a 32-bit feature id from a feature name.
func FeatureID(name string) uint32 {
	return CatValue(name)
}

// Checksum computes the xxHash64 digest of a serialized payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
