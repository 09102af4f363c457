package frame

// Checksum constants, bit-exact with the reference implementation.
// These are NOT tuning knobs — changing either constant breaks
// interoperability with any peer running the reference codec.
const (
	hashP1 uint64 = 11400714785074694791
	hashP2 uint64 = 14029467366897019727
)

// ChecksumHash computes the 64-bit non-cryptographic integrity hash
// used for the payload checksum field (spec §4.1). It must match the
// reference implementation's hash bit-for-bit; the algorithm is fixed
// by the wire format, not a design choice made here.
func ChecksumHash(payload []byte) uint64 {
	var h uint64
	for _, b := range payload {
		h = h ^ (uint64(b) * hashP1)
		h = rotl64(h, 31) * hashP2
	}
	return h
}

func rotl64(v uint64, n uint) uint64 {
	return (v << n) | (v >> (64 - n))
}
