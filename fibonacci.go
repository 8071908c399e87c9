package hashtable

// fibMagic is floor(2^32/phi), used to diffuse a user hash's low bits
// into its high bits before truncation. See
// https://probablydance.com/2018/06/16/fibonacci-hashing-the-optimization-that-the-world-forgot-or-a-better-alternative-to-integer-modulo/
// This is the same constant petermattis-maptoy's robinHoodMap.hash uses
// (there applied to the full 64-bit hash; here we mix in 32-bit lanes
// because our metadata tag only needs the top 7 bits of a 32-bit
// product, and truncating a 64-bit multiply to 32 bits loses nothing we
// use).
const fibMagic32 uint32 = 2654435769

// emptyMeta is the sentinel hashmeta byte for an EMPTY slot. No
// OCCUPIED slot may carry this value: splitHash always forces bit 7 set.
const emptyMeta byte = 0

// splitHash maps a user hash h and the current capacity mask (N-1, N a
// power of two) to a home slot and a 7-bit (plus forced high bit) meta
// byte. Two elements with identical h produce identical (slot, meta).
func splitHash(h uint64, mask uint64) (slot uint64, meta byte) {
	x := uint32(h) * fibMagic32
	slot = uint64(x) & mask
	meta = byte(x>>25) | 0x80
	return slot, meta
}
