// Package hashtable implements an in-memory open-addressed hash table
// with Robin-Hood probing, back-shift deletion, and a SIMD-accelerated
// metadata scan. It is the generic engine behind Set and Map; see
// set.go and map.go for the thin facades most callers want.
package hashtable

import "hash/maphash"

// lazyInitialCapacity is the size the table grows to on its first
// insert when it was constructed with no capacity hint (spec.md §4.5:
// "Lazy allocate to N = 8 if arrays are null").
const lazyInitialCapacity = 8

// InsertResult reports what Insert did.
type InsertResult int

const (
	Inserted InsertResult = iota
	Replaced
	NotInserted
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "Inserted"
	case Replaced:
		return "Replaced"
	case NotInserted:
		return "NotInserted"
	default:
		return "InsertResult(unknown)"
	}
}

// Table is the Robin-Hood open-addressed engine. K is the lookup key
// type and T the stored element type; for Set[T] they coincide, while
// Map[K, V] stores a key/value pair as T and supplies a Comparator
// whose Equal only examines the key half.
//
// Each occupied slot keeps, alongside its value, the hash that placed
// it there (hashOf: Hash(key) mixed with the table's seed, or
// hashFunc's result when that is set). That is what lets Rehash relocate every
// element into a larger table without needing to recover each
// element's original K from its stored T.
//
// A Table is not safe for concurrent use; see spec.md §5.
type Table[K, T any] struct {
	values   []T
	hashmeta []byte   // len cap+metaPad; hashmeta[i]==0 iff slot i is EMPTY
	dist     []byte   // len cap; probe distance from home slot, 0 when EMPTY
	hashes   []uint64 // len cap; hashOf(key) as it was when the slot was filled

	cap  int // 0 or a power of two >= minCapacity
	size int

	cmp  Comparator[K, T]
	seed uint64

	// hashFunc overrides cmp.Hash entirely when set, bypassing the
	// table's own seed. Tests use this for reproducible, intentionally
	// weak hash distributions (see vmap_test.go's identityHash),
	// mirroring the teacher's vmap_test.go which reached into
	// Map.hashFunc for the same reason.
	hashFunc func(K) uint64
}

// New constructs an empty table. If initialCapacity > 0 it is rounded
// up to a power of two >= 4 and the backing arrays are allocated
// immediately; otherwise allocation is deferred to the first
// Insert-family call, per spec.md's lifecycle note.
func New[K, T any](cmp Comparator[K, T], initialCapacity int) *Table[K, T] {
	t := &Table[K, T]{cmp: cmp, seed: newSeed()}
	if initialCapacity > 0 {
		t.allocate(nextPow2(initialCapacity))
	}
	return t
}

func newSeed() uint64 {
	var h maphash.Hash // zero Hash is valid and carries its own random seed
	return h.Sum64()
}

// Len returns the number of stored elements.
func (t *Table[K, T]) Len() int {
	return t.size
}

// Load returns size/cap, or 0 for an unallocated table.
func (t *Table[K, T]) Load() float64 {
	if t.cap == 0 {
		return 0
	}
	return float64(t.size) / float64(t.cap)
}

// Cap reports the current number of slots (0 if unallocated).
func (t *Table[K, T]) Cap() int {
	return t.cap
}

func (t *Table[K, T]) hashOf(key K) uint64 {
	if t.hashFunc != nil {
		return t.hashFunc(key)
	}
	return t.cmp.Hash(key) ^ t.seed
}

func (t *Table[K, T]) allocate(n int) {
	values := make([]T, n)
	hashmeta := make([]byte, n+metaPad)
	dist := make([]byte, n)
	hashes := make([]uint64, n)
	t.values, t.hashmeta, t.dist, t.hashes = values, hashmeta, dist, hashes
	t.cap = n
	t.size = 0
}

// ensureCapacityForInsert performs the lazy-allocate and grow-on-load
// checks spec.md §4.5 step 1 requires before any slot walk begins.
func (t *Table[K, T]) ensureCapacityForInsert() {
	if t.cap == 0 {
		t.allocate(lazyInitialCapacity)
		return
	}
	if float64(t.size+1) > 0.875*float64(t.cap) {
		t.rehash(t.cap * 2)
	}
}

// rehash allocates a fresh table of newCap slots and reinserts every
// live element from the old arrays, per spec.md §4.9. The new arrays
// are allocated before the old ones are dropped, so an allocation
// failure (a panic from make, in Go) leaves the table untouched.
func (t *Table[K, T]) rehash(newCap int) {
	oldValues, oldMeta, oldHashes := t.values, t.hashmeta, t.hashes
	oldCap := t.cap

	t.allocate(newCap)
	for i := 0; i < oldCap; i++ {
		if oldMeta[i] == emptyMeta {
			continue
		}
		t.insertFresh(oldValues[i], oldHashes[i])
	}
}

// insertFresh places elem, whose key hashed to h, via the equality-free
// primitive. Used by Rehash, where every element is already known to
// be unique in the table.
func (t *Table[K, T]) insertFresh(elem T, h uint64) {
	mask := uint64(t.cap - 1)
	home, meta := splitHash(h, mask)
	t.insertUnique(elem, h, home, meta, 0)
}

// insertUnique is spec.md §4.6: the same Robin-Hood walk as Insert, but
// it never tests for equality because the caller guarantees no equal
// element can exist past this point (it was already interned in the
// table, or arrives via Rehash from a table with no duplicates).
func (t *Table[K, T]) insertUnique(elem T, h uint64, start uint64, meta byte, dist int) {
	mask := uint64(t.cap - 1)
	i, d := start, dist
	for {
		if t.hashmeta[i] == emptyMeta {
			t.values[i] = elem
			t.hashmeta[i] = meta
			t.dist[i] = byte(d)
			t.hashes[i] = h
			t.size++
			return
		}
		if int(t.dist[i]) < d {
			// Robin Hood swap: the incumbent at i is richer than its
			// slot deserves relative to our current distance. Steal
			// its slot and keep walking to place what we displaced.
			var incumbentDist int
			elem, t.values[i] = t.values[i], elem
			meta, t.hashmeta[i] = t.hashmeta[i], meta
			incumbentDist, t.dist[i] = int(t.dist[i]), byte(d)
			d = incumbentDist
			h, t.hashes[i] = t.hashes[i], h
		}
		d++
		if d > maxDist {
			panic(&CapacityOverflowError{Slot: int(i), Distance: d})
		}
		i = (i + 1) & mask
	}
}

// Insert places elem under key, replacing any existing equal element
// iff replace is true. See spec.md §4.5.
func (t *Table[K, T]) Insert(key K, elem T, replace bool) InsertResult {
	t.ensureCapacityForInsert()
	mask := uint64(t.cap - 1)
	h := t.hashOf(key)
	home, meta := splitHash(h, mask)

	i, d := home, 0
	for {
		switch {
		case t.hashmeta[i] == emptyMeta:
			t.values[i] = elem
			t.hashmeta[i] = meta
			t.dist[i] = byte(d)
			t.hashes[i] = h
			t.size++
			return Inserted

		case t.hashmeta[i] == meta && int(t.dist[i]) == d && t.cmp.Equal(key, t.values[i]):
			// Robin-Hood invariant 3 implies equality can only occur at
			// this exact distance.
			if replace {
				t.values[i] = elem
				t.hashes[i] = h
				return Replaced
			}
			return NotInserted

		case int(t.dist[i]) < d:
			var incumbentDist int
			elem, t.values[i] = t.values[i], elem
			meta, t.hashmeta[i] = t.hashmeta[i], meta
			incumbentDist, t.dist[i] = int(t.dist[i]), byte(d)
			h, t.hashes[i] = t.hashes[i], h
			t.insertUnique(elem, h, (i+1)&mask, meta, incumbentDist+1)
			return Inserted
		}

		d++
		if d > maxDist {
			panic(&CapacityOverflowError{Slot: int(i), Distance: d})
		}
		i = (i + 1) & mask
	}
}

// InsertIfAbsent inserts elem under key if no equal element is present,
// and always returns a reference to the element now stored under key's
// identity (the existing one, or the one just inserted). The reference
// is valid only until the table's next mutation.
func (t *Table[K, T]) InsertIfAbsent(key K, elem T) (ref *T, inserted bool) {
	before := t.size
	ref = t.ComputeIfAbsent(key, func(K) T { return elem })
	return ref, t.size != before
}

// ComputeIfAbsent looks up key and, if absent, invokes builder exactly
// once to produce the element to install. See spec.md §4.8.
func (t *Table[K, T]) ComputeIfAbsent(key K, builder func(K) T) *T {
	t.ensureCapacityForInsert()
	mask := uint64(t.cap - 1)
	h := t.hashOf(key)
	home, meta := splitHash(h, mask)

	i, d := home, 0
	for {
		switch {
		case t.hashmeta[i] == emptyMeta:
			t.values[i] = builder(key)
			t.hashmeta[i] = meta
			t.dist[i] = byte(d)
			t.hashes[i] = h
			t.size++
			return &t.values[i]

		case t.hashmeta[i] == meta && int(t.dist[i]) == d && t.cmp.Equal(key, t.values[i]):
			return &t.values[i]

		case int(t.dist[i]) < d:
			// Synthesize the element before the displacement completes,
			// per spec.md §4.8, then hand the incumbent to insertUnique.
			var incumbentDist int
			elem := builder(key)
			elem, t.values[i] = t.values[i], elem
			meta, t.hashmeta[i] = t.hashmeta[i], meta
			incumbentDist, t.dist[i] = int(t.dist[i]), byte(d)
			h, t.hashes[i] = t.hashes[i], h
			t.insertUnique(elem, h, (i+1)&mask, meta, incumbentDist+1)
			return &t.values[i]
		}

		d++
		if d > maxDist {
			panic(&CapacityOverflowError{Slot: int(i), Distance: d})
		}
		i = (i + 1) & mask
	}
}

// ComputeMerge installs seed under key if absent, or folds it into the
// existing element via merge. See spec.md §4.8.
func (t *Table[K, T]) ComputeMerge(key K, seed T, merge func(existing, seed T) T) *T {
	t.ensureCapacityForInsert()
	mask := uint64(t.cap - 1)
	h := t.hashOf(key)
	home, meta := splitHash(h, mask)

	i, d := home, 0
	for {
		switch {
		case t.hashmeta[i] == emptyMeta:
			t.values[i] = seed
			t.hashmeta[i] = meta
			t.dist[i] = byte(d)
			t.hashes[i] = h
			t.size++
			return &t.values[i]

		case t.hashmeta[i] == meta && int(t.dist[i]) == d && t.cmp.Equal(key, t.values[i]):
			t.values[i] = merge(t.values[i], seed)
			return &t.values[i]

		case int(t.dist[i]) < d:
			var incumbentDist int
			elem := seed
			elem, t.values[i] = t.values[i], elem
			meta, t.hashmeta[i] = t.hashmeta[i], meta
			incumbentDist, t.dist[i] = int(t.dist[i]), byte(d)
			h, t.hashes[i] = t.hashes[i], h
			t.insertUnique(elem, h, (i+1)&mask, meta, incumbentDist+1)
			return &t.values[i]
		}

		d++
		if d > maxDist {
			panic(&CapacityOverflowError{Slot: int(i), Distance: d})
		}
		i = (i + 1) & mask
	}
}

// TryGetIndex finds the slot holding key, per spec.md §4.4. It prefers
// the SIMD group scan whenever a full groupWidth-byte window starting
// at the current probe position lies entirely within [0, cap) — i.e.
// doesn't need to wrap — and falls back to a single-slot scalar walk
// the rest of the time (small tables, and the tail/wrap region of
// larger ones). This is the resolution to spec.md §9's open question
// about the SIMD and scalar paths needing to agree on which slots have
// been scanned: the SIMD path only ever touches wrap-free windows, so the scalar path's single-slot wrap handling is always
// authoritative at a boundary.
func (t *Table[K, T]) TryGetIndex(key K) (int, bool) {
	if t.size == 0 {
		return 0, false
	}
	n := uint64(t.cap)
	mask := n - 1
	home, meta := splitHash(t.hashOf(key), mask)

	i := home
	for {
		if simdAvailable && n-i >= groupWidth {
			group := t.hashmeta[i : i+groupWidth]
			matches := matchGroup(group, meta)
			for matches.has() {
				idx := i + uint64(matches.current())
				if t.cmp.Equal(key, t.values[idx]) {
					return int(idx), true
				}
				matches = matches.advance()
			}
			if emptyGroup(group).has() {
				return 0, false
			}
			i = (i + groupWidth) & mask
			continue
		}

		if t.hashmeta[i] == meta {
			if t.cmp.Equal(key, t.values[i]) {
				return int(i), true
			}
		} else if t.hashmeta[i] == emptyMeta {
			return 0, false
		}
		i = (i + 1) & mask
	}
}

// Contains reports whether an element matching key is present.
func (t *Table[K, T]) Contains(key K) bool {
	_, ok := t.TryGetIndex(key)
	return ok
}

// Remove deletes the element matching key, if present.
func (t *Table[K, T]) Remove(key K) bool {
	idx, ok := t.TryGetIndex(key)
	if !ok {
		return false
	}
	return t.RemoveAt(idx)
}

// RemoveAt deletes the element at slot, using back-shift deletion
// (spec.md §4.7). It is for facades that already resolved the slot via
// TryGetIndex and want to mutate or remove without hashing again.
func (t *Table[K, T]) RemoveAt(slot int) bool {
	if slot < 0 || slot >= t.cap || t.hashmeta[slot] == emptyMeta {
		return false
	}
	mask := uint64(t.cap - 1)
	cur := uint64(slot)

	t.size--
	if t.size == 0 {
		t.clearSlot(cur)
		return true
	}

	for {
		next := (cur + 1) & mask
		if t.hashmeta[next] == emptyMeta || t.dist[next] == 0 {
			t.clearSlot(cur)
			return true
		}
		t.values[cur] = t.values[next]
		t.hashmeta[cur] = t.hashmeta[next]
		t.dist[cur] = t.dist[next] - 1
		t.hashes[cur] = t.hashes[next]
		cur = next
	}
}

func (t *Table[K, T]) clearSlot(i uint64) {
	var zero T
	t.values[i] = zero
	t.hashmeta[i] = emptyMeta
	t.dist[i] = 0
	t.hashes[i] = 0
}

// Clear releases the backing arrays, returning the table to its
// pristine zero-capacity state.
func (t *Table[K, T]) Clear() {
	t.values = nil
	t.hashmeta = nil
	t.dist = nil
	t.hashes = nil
	t.cap = 0
	t.size = 0
}

// Reserve ensures the next n unique inserts will not trigger a rehash,
// per spec.md §4.9. It reports whether a rehash occurred.
func (t *Table[K, T]) Reserve(n int) bool {
	if n <= 0 {
		return false
	}
	required := nextPow2(2 * (t.size + n))
	if t.cap > 0 && float64(t.cap) >= float64(required)/0.875 {
		return false
	}
	t.rehash(required)
	return true
}

// ForEach visits every live element in group-ascending index order
// (spec.md's implementation-defined order). The visitor returns false
// to stop early; ForEach always returns the number of elements
// actually visited.
func (t *Table[K, T]) ForEach(visitor func(T) bool) int {
	count := 0
	for i := 0; i < t.cap; i++ {
		if t.hashmeta[i] == emptyMeta {
			continue
		}
		count++
		if !visitor(t.values[i]) {
			return count
		}
	}
	return count
}
