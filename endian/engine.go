// Package endian provides byte order utilities for the ERI binary layout.
//
// The ERI format is always little-endian on the wire. This package wraps
// encoding/binary's byte orders behind the EndianEngine interface and adds
// the float32 helpers used by the embeddings block codec.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat32(engine, buf, 1.5)
//	v := endian.Float32(engine, buf[0:4])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the low byte (0x00) comes first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
// When it does, fixed-width blocks can be copied without per-value swapping.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine used by the ERI format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// PutFloat32 writes v as an IEEE 754 float32 into b[0:4].
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// AppendFloat32 appends v as an IEEE 754 float32 to b.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}

// Float32 reads an IEEE 754 float32 from b[0:4].
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}
