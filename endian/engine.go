// Package endian provides byte order utilities for serialized feature columns.
//
// A serialized column records the byte order it was written with, and the
// bit-packed compressed array relies on the host byte order when its words are
// reinterpreted as a plain []uint8, []uint16 or []uint32 in place. This package
// combines binary.ByteOrder and binary.AppendByteOrder into EndianEngine and
// answers the "is the host little-endian" question once.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, bits)
//
// # Thread Safety
//
// All functions are safe for concurrent use. Engines are immutable.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeOrder = detectNative()

func detectNative() binary.ByteOrder {
	// 0x0100: the lowest address holds 0x00 on little-endian hosts.
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness returns the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	return nativeOrder
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
//
// Raw reinterpretation of packed words as narrower integers is only valid
// when this returns true.
func IsNativeLittleEndian() bool {
	return nativeOrder == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return nativeOrder == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == nativeOrder
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine, the default for column blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
