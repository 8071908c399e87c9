package hashtable

// KV is the element type a Map stores in its underlying Table: identity
// under the table is the Key field alone, per spec.md's "custom
// equality/hash adapter" note.
type KV[K, V any] struct {
	Key   K
	Value V
}

// pairComparator adapts a key-only Comparator[K, K] into the
// Comparator[K, KV[K, V]] the core table needs: hash and equality both
// look only at the Key half of the stored pair, never the Value.
type pairComparator[K comparable, V any] struct {
	keyCmp Comparator[K, K]
}

func (c pairComparator[K, V]) Hash(key K) uint64 {
	return c.keyCmp.Hash(key)
}

func (c pairComparator[K, V]) Equal(key K, elem KV[K, V]) bool {
	return c.keyCmp.Equal(key, elem.Key)
}

// Map is a key/value container built on Table[K, KV[K, V]]. K must be
// comparable so GetBulk/SetBulk can hand callers a plain map[K]V.
type Map[K comparable, V any] struct {
	t *Table[K, KV[K, V]]
}

// NewMap constructs an empty map using keyCmp for key identity.
func NewMap[K comparable, V any](keyCmp Comparator[K, K], initialCapacity int) *Map[K, V] {
	return &Map[K, V]{t: New[K, KV[K, V]](pairComparator[K, V]{keyCmp}, initialCapacity)}
}

// NewScalarMap is a convenience constructor for scalar key types.
func NewScalarMap[K comparable, V any](initialCapacity int) *Map[K, V] {
	return NewMap[K, V](NewScalarComparator[K](), initialCapacity)
}

// Len returns the number of key/value pairs stored.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Load returns the underlying table's load factor.
func (m *Map[K, V]) Load() float64 { return m.t.Load() }

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	idx, ok := m.t.TryGetIndex(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.t.values[idx].Value, true
}

// MustGet is Get with ErrNotFound in place of a false ok, for callers
// that prefer the (value, error) idiom.
func (m *Map[K, V]) MustGet(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.Contains(key)
}

// Set stores value under key, overwriting any existing value. It
// reports whether key was already present.
func (m *Map[K, V]) Set(key K, value V) (replaced bool) {
	return m.t.Insert(key, KV[K, V]{Key: key, Value: value}, true) == Replaced
}

// SetIfAbsent stores value under key only if key is absent, returning
// the value now associated with key and whether it was the one just
// inserted.
func (m *Map[K, V]) SetIfAbsent(key K, value V) (V, bool) {
	ref, inserted := m.t.InsertIfAbsent(key, KV[K, V]{Key: key, Value: value})
	return ref.Value, inserted
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.t.Remove(key)
}

// Clear empties the map.
func (m *Map[K, V]) Clear() {
	m.t.Clear()
}

// Reserve ensures the next n Sets of new keys will not trigger a
// rehash.
func (m *Map[K, V]) Reserve(n int) bool {
	return m.t.Reserve(n)
}

// Range visits every pair; f returns false to stop early. Returns the
// number of pairs visited, mirroring the teacher's sync.Map-style
// Range naming.
func (m *Map[K, V]) Range(f func(key K, value V) bool) int {
	return m.t.ForEach(func(kv KV[K, V]) bool {
		return f(kv.Key, kv.Value)
	})
}

// GetOrCompute returns the value under key, computing and storing it
// via builder exactly once if key is absent.
func (m *Map[K, V]) GetOrCompute(key K, builder func(K) V) V {
	ref := m.t.ComputeIfAbsent(key, func(k K) KV[K, V] {
		return KV[K, V]{Key: k, Value: builder(k)}
	})
	return ref.Value
}

// Merge folds seed into the value stored under key via mergeFn if key
// is present, or installs seed as the initial value otherwise.
func (m *Map[K, V]) Merge(key K, seed V, mergeFn func(existing, seed V) V) V {
	ref := m.t.ComputeMerge(key, KV[K, V]{Key: key, Value: seed},
		func(existing, s KV[K, V]) KV[K, V] {
			return KV[K, V]{Key: key, Value: mergeFn(existing.Value, s.Value)}
		})
	return ref.Value
}

// GetBulk looks up every key in keys, returning only those present.
func (m *Map[K, V]) GetBulk(keys []K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

// SetBulk stores every pair, last write wins for duplicate keys.
func (m *Map[K, V]) SetBulk(pairs map[K]V) {
	m.Reserve(len(pairs))
	for k, v := range pairs {
		m.Set(k, v)
	}
}

// DeleteBulk removes every key present in keys, returning the number
// actually deleted.
func (m *Map[K, V]) DeleteBulk(keys []K) int {
	n := 0
	for _, k := range keys {
		if m.Delete(k) {
			n++
		}
	}
	return n
}
