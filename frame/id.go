// Package frame implements the MXP wire codec: a fixed 64-byte header
// plus variable payload, and the typed Frame value built on top of it.
//
// The codec here must agree bit-for-bit with a reference implementation
// written in another language, so every field layout, endianness choice,
// and the checksum algorithm are spec-mandated rather than idiomatic
// Go defaults.
package frame

import (
	"crypto/rand"
	"encoding/binary"
)

// NewID returns a 64-bit identifier drawn from a cryptographically
// strong random source. Collisions within a process are tolerated but
// astronomically unlikely; no monotonicity or structure is implied.
func NewID() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// no safe fallback for an identifier that must be unpredictable.
		panic("frame: crypto/rand unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
