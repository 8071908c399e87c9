package hashtable

import (
	"math/rand"
	"testing"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := NewScalarSet[int](0)

	if s.Add(1) != true {
		t.Fatalf("first Add(1) = false")
	}
	if s.Add(1) != false {
		t.Fatalf("second Add(1) = true, want false")
	}
	if !s.Contains(1) {
		t.Fatalf("Contains(1) = false")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !s.Remove(1) {
		t.Fatalf("Remove(1) = false")
	}
	if s.Contains(1) {
		t.Fatalf("Contains(1) after Remove = true")
	}
	if s.Remove(1) {
		t.Fatalf("second Remove(1) = true, want false")
	}
}

// S1 from spec.md's testable-properties scenario list.
func TestSet_ScenarioS1(t *testing.T) {
	s := NewScalarSet[int](0)
	input := []int{1, 3, 5, 7, 9, 8, 6, 3, 4, 2, 3, 5, 6, 7, 8, 9, 2, 3, 4, 1, 2, 3, 5, 6, 4, 3, 5, 8, 7, 9, 0, 8, 6}
	for _, v := range input {
		s.Add(v)
	}
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	for k := 0; k < 10; k++ {
		if !s.Contains(k) {
			t.Errorf("Contains(%d) = false, want true", k)
		}
	}
}

func TestSet_UnionIntersectExcept(t *testing.T) {
	a := NewScalarSet[int](0)
	b := NewScalarSet[int](0)
	for _, v := range []int{1, 2, 3, 4} {
		a.Add(v)
	}
	for _, v := range []int{3, 4, 5, 6} {
		b.Add(v)
	}

	union := NewScalarSet[int](0)
	union.Union(a)
	union.Union(b)
	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		if !union.Contains(v) {
			t.Errorf("Union missing %d", v)
		}
	}
	if union.Len() != 6 {
		t.Errorf("Union.Len() = %d, want 6", union.Len())
	}

	inter := NewScalarSet[int](0)
	inter.Union(a)
	inter.Intersect(b)
	for _, v := range []int{3, 4} {
		if !inter.Contains(v) {
			t.Errorf("Intersect missing %d", v)
		}
	}
	if inter.Len() != 2 {
		t.Errorf("Intersect.Len() = %d, want 2", inter.Len())
	}

	except := NewScalarSet[int](0)
	except.Union(a)
	except.Except(b)
	for _, v := range []int{1, 2} {
		if !except.Contains(v) {
			t.Errorf("Except missing %d", v)
		}
	}
	if except.Len() != 2 {
		t.Errorf("Except.Len() = %d, want 2", except.Len())
	}
}

// S5 from spec.md: interleave add/remove against a reference map-as-set.
func TestSet_RemoveParityWithReference(t *testing.T) {
	s := NewScalarSet[string](0)
	ref := map[string]struct{}{}
	rng := rand.New(rand.NewSource(2))

	randString := func() string {
		const letters = "abcdefghijklmnopqrstuvwxyz"
		buf := make([]byte, 10)
		for i := range buf {
			buf[i] = letters[rng.Intn(len(letters))]
		}
		return string(buf)
	}

	pool := make([]string, 0, 200)
	for i := 0; i < 1000; i++ {
		var v string
		if len(pool) > 0 && rng.Intn(3) != 0 {
			v = pool[rng.Intn(len(pool))]
		} else {
			v = randString()
			pool = append(pool, v)
		}

		if rng.Intn(2) == 0 {
			s.Add(v)
			ref[v] = struct{}{}
		} else {
			s.Remove(v)
			delete(ref, v)
		}

		if s.Len() != len(ref) {
			t.Fatalf("iteration %d: Len() = %d, want %d", i, s.Len(), len(ref))
		}
		if _, want := ref[v]; want != s.Contains(v) {
			t.Fatalf("iteration %d: Contains(%q) = %v, want %v", i, v, s.Contains(v), want)
		}
	}
}

func TestSet_ForEachShortCircuit(t *testing.T) {
	s := NewScalarSet[int](0)
	for i := 0; i < 50; i++ {
		s.Add(i)
	}
	count := 0
	visited := s.ForEach(func(int) bool {
		count++
		return count < 5
	})
	if visited != 5 {
		t.Errorf("ForEach visited %d, want 5", visited)
	}
}
