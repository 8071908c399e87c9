package hashtable

import "testing"

func TestSplitHash(t *testing.T) {
	mask := uint64(1<<6 - 1) // N = 64

	slot, meta := splitHash(0xDEADBEEFCAFEBABE, mask)
	if slot > mask {
		t.Errorf("slot %d exceeds mask %d", slot, mask)
	}
	if meta&0x80 == 0 {
		t.Errorf("meta %08b does not have the high bit forced", meta)
	}
	if meta == emptyMeta {
		t.Errorf("meta collided with the EMPTY sentinel")
	}

	slot2, meta2 := splitHash(0xDEADBEEFCAFEBABE, mask)
	if slot != slot2 || meta != meta2 {
		t.Errorf("splitHash is not deterministic for a repeated hash")
	}
}

func TestSplitHashMaskRespected(t *testing.T) {
	for _, n := range []uint64{4, 8, 16, 1024, 1 << 20} {
		mask := n - 1
		for h := uint64(0); h < 5000; h++ {
			slot, _ := splitHash(h*0x9E3779B97F4A7C15, mask)
			if slot > mask {
				t.Fatalf("N=%d: slot %d exceeds mask %d", n, slot, mask)
			}
		}
	}
}
