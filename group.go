package hashtable

// groupWidth is the number of metadata lanes scanned by one call to
// MatchByte: 16 on the SSE2 fast path, and kept at 16 on the scalar
// fallback too so the table's slot-storage layout (in particular the
// padding length) never depends on which scan implementation a given
// build links in. See DESIGN.md's resolution of the corresponding Open
// Question in spec.md §9.
const groupWidth = 16

// metaPad is the number of always-zero trailing bytes appended to the
// hashmeta array so that a group load starting anywhere in
// [0, N) never reads past the end of the backing array.
const metaPad = groupWidth

// matchGroup returns a bitmask of lanes in group equal to meta. group
// must have at least groupWidth bytes available (true of any slice
// taken from hashmeta at offset <= N, given metaPad).
func matchGroup(group []byte, meta byte) bitmask {
	mask, ok := MatchByte(meta, group)
	if !ok {
		panic("hashtable: short metadata slice passed to matchGroup")
	}
	return bitmask(mask)
}

// emptyGroup returns a bitmask of EMPTY lanes in group.
func emptyGroup(group []byte) bitmask {
	return matchGroup(group, emptyMeta)
}
