// Package simdscan provides a fast ASCII-only check for regex source text,
// gated by the CPU features golang.org/x/sys/cpu detects at init time.
//
// This mirrors the teacher's simd.IsASCII: when a pattern is pure ASCII, the
// caller can index it with a flat byte-keyed table instead of decoding runes
// one at a time. Unlike the teacher, there is no assembly fast path here —
// the patterns this package scans are compiled once per Compile call, not
// per matched byte, so the SWAR loop below already dwarfs parsing cost. The
// CPU feature check still gates the chunk width, the same knob the teacher
// uses to decide whether 32-byte vector loads are worth the setup cost.
package simdscan

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// wideChunks is true when the host CPU has enough SIMD width that widening
// the scalar SWAR stride to 16 bytes at a time still pays for itself. It is
// read-only after init, same as the teacher's hasAVX2.
var wideChunks = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

const hiBits8 = uint64(0x8080808080808080)

// IsASCII reports whether every byte in data has its high bit clear.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if n < 8 {
		for _, b := range data {
			if b >= 0x80 {
				return false
			}
		}
		return true
	}

	stride := 8
	if wideChunks && n >= 16 {
		stride = 16
	}

	i := 0
	for i+stride <= n {
		if binary.LittleEndian.Uint64(data[i:])&hiBits8 != 0 {
			return false
		}
		if stride == 16 && binary.LittleEndian.Uint64(data[i+8:])&hiBits8 != 0 {
			return false
		}
		i += stride
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// IsASCIIString is IsASCII over a string, for callers scanning regex source
// text directly without first copying it to a byte slice.
func IsASCIIString(s string) bool {
	n := len(s)
	if n == 0 {
		return true
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] >= 0x80 {
				return false
			}
		}
		return true
	}
	return IsASCII([]byte(s))
}
