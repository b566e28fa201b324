// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds 24-bit group helpers for the packed 12-bit sample format, where two
// samples occupy one big-endian 3-byte group.
//
// # Basic Usage
//
// Packed sample streams are big-endian on the wire, so decoders use
// GetBigEndianEngine():
//
//	import "github.com/arloliu/pack12/endian"
//
//	engine := endian.GetBigEndianEngine()
//	word := engine.Uint16(tail) // 16-bit trailing group
//
// The 3-byte group helpers operate on big-endian groups directly:
//
//	word := endian.Uint24(chunk) // native uint32 holding both 12-bit fields
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
//
// The packed sample codecs assemble wire groups arithmetically, so decoding
// never branches on the host order; the probe exists so codec tests can
// assert that independence on whatever host they run on.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Uint24 assembles the first 3 bytes of b, interpreted as a big-endian 24-bit
// group, into a native uint32. For a group holding two packed 12-bit samples,
// the first sample occupies bits [12..23] of the result and the second sample
// bits [0..11].
//
// Panics if len(b) < 3.
func Uint24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16
}

// PutUint24 stores the low 24 bits of v into b as a big-endian 3-byte group.
//
// Panics if len(b) < 3.
func PutUint24(b []byte, v uint32) {
	_ = b[2] // bounds check hint to compiler
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// AppendUint24 appends the low 24 bits of v to b as a big-endian 3-byte group
// and returns the extended slice.
func AppendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}
