//go:build amd64 && !purego

package hashtable

// MatchByte scans a 16-byte metadata group for lanes equal to c. buffer
// must have at least groupWidth (16) bytes available; callers rely on
// the trailing padding region of hashmeta to guarantee this even at the
// tail of the table. ok is false if buffer is too short to scan, in
// which case mask is always zero.
//
// Implemented in match_amd64.s: broadcast c across all 16 lanes of an
// XMM register, compare against a 16-byte unaligned load, and move the
// per-byte comparison result into a 16-bit mask via PMOVMSKB.
func MatchByte(c uint8, buffer []byte) (mask uint32, ok bool)
