package hashtable

import "github.com/sanity-io/litter"

// slotDump is one row of a Table's diagnostic dump.
type slotDump struct {
	Slot  int
	Dist  byte
	Meta  byte
	Value any
}

// Dump renders every occupied slot of the table for debugging, in the
// style of Saiprakashreddy14-swiss's SwissTable.Visualize: a plain Go
// value that litter pretty-prints, rather than a bespoke ASCII-art
// renderer.
func (t *Table[K, T]) Dump() string {
	rows := make([]slotDump, 0, t.size)
	for i := 0; i < t.cap; i++ {
		if t.hashmeta[i] == emptyMeta {
			continue
		}
		rows = append(rows, slotDump{Slot: i, Dist: t.dist[i], Meta: t.hashmeta[i], Value: t.values[i]})
	}
	return litter.Sdump(rows)
}

// String implements fmt.Stringer with a short summary (length,
// capacity, capacity bits, load), which litter prints over several
// lines; use Dump for the full per-slot detail.
func (t *Table[K, T]) String() string {
	capBits := 0
	if t.cap > 0 {
		capBits = log2(t.cap)
	}
	return litter.Sdump(struct {
		Len, Cap, CapBits int
		Load              float64
	}{t.size, t.cap, capBits, t.Load()})
}
