package hashtable

import (
	"fmt"
	"hash/maphash"
)

// Comparator is how a Table learns to hash and compare its elements. K
// is the lookup key type; T is the stored element type. For a set-like
// table K == T. For a map-like table, T is a key/value pair and Equal
// only examines the key half — per spec, "equality and hash are
// computed from the key alone."
type Comparator[K, T any] interface {
	// Hash returns a 64-bit hash of key. Table mixes this through
	// Fibonacci hashing before use; a weak or narrow hash is fine.
	Hash(key K) uint64
	// Equal reports whether elem is the element identified by key.
	Equal(key K, elem T) bool
}

// comparatorFunc adapts a pair of functions to Comparator, in the
// spirit of http.HandlerFunc: most comparators are two pure functions
// and don't need a named type.
type comparatorFunc[K, T any] struct {
	hash  func(K) uint64
	equal func(K, T) bool
}

func (c comparatorFunc[K, T]) Hash(key K) uint64        { return c.hash(key) }
func (c comparatorFunc[K, T]) Equal(key K, elem T) bool { return c.equal(key, elem) }

// NewComparator builds a Comparator from a hash function and an
// equality function, for callers who would rather not declare a named
// type.
func NewComparator[K, T any](hash func(K) uint64, equal func(K, T) bool) Comparator[K, T] {
	return comparatorFunc[K, T]{hash: hash, equal: equal}
}

// scalarComparator wraps a maphash.Seed so scalar/string comparators
// pick up a process-random seed the same way Saiprakashreddy14-swiss's
// SwissTable seeds its own maphash.Hash per table instance, instead of
// relying on Go's built-in (and unseeded, for our purposes) comparable
// equality plus a fixed hash.
type scalarComparator[T comparable] struct {
	seed maphash.Seed
}

func (c scalarComparator[T]) Hash(key T) uint64 {
	var h maphash.Hash
	h.SetSeed(c.seed)
	writeScalar(&h, key)
	return h.Sum64()
}

func (c scalarComparator[T]) Equal(key, elem T) bool {
	return key == elem
}

// writeScalar feeds an encoding of v into h: a fixed-width
// little-endian encoding for integer types, the raw bytes for strings,
// and the %v text for any other type.
// Using fmt.Fprintf (as Saiprakashreddy14-swiss's hashKey does) would
// work too, but allocates per hash; a direct byte encoding keeps the
// steady-state lookup path allocation-free per spec §5.
func writeScalar[T comparable](h *maphash.Hash, v T) {
	switch x := any(v).(type) {
	case int:
		writeUint64(h, uint64(x))
	case int8:
		writeUint64(h, uint64(x))
	case int16:
		writeUint64(h, uint64(x))
	case int32:
		writeUint64(h, uint64(x))
	case int64:
		writeUint64(h, uint64(x))
	case uint:
		writeUint64(h, uint64(x))
	case uint8:
		writeUint64(h, uint64(x))
	case uint16:
		writeUint64(h, uint64(x))
	case uint32:
		writeUint64(h, uint64(x))
	case uint64:
		writeUint64(h, x)
	case uintptr:
		writeUint64(h, uint64(x))
	case string:
		_, _ = h.WriteString(x)
	default:
		// Fall back to the %v encoding used by Saiprakashreddy14-swiss's
		// hashKey for types we don't special-case (bool, float, etc.).
		// Write straight into h, which already carries the comparator's
		// fixed seed, rather than minting a fresh maphash.Seed per call.
		// A fresh seed here would hash the same value differently on
		// every call, so insert and lookup would never agree.
		_, _ = h.WriteString(sprintScalar(v))
	}
}

func sprintScalar[T comparable](v T) string {
	return fmt.Sprintf("%v", v)
}

func writeUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}

// NewScalarComparator returns a Comparator for any comparable scalar
// type (ints, strings, etc.), hashed with a fresh per-call maphash
// seed. Use this for Set[T] and for map keys when no custom comparator
// is needed — this is the "equality/hasher acquisition for common
// scalar and string types" spec.md scopes as an external collaborator;
// here it is the one concrete realization the module ships.
func NewScalarComparator[T comparable]() Comparator[T, T] {
	return scalarComparator[T]{seed: maphash.MakeSeed()}
}
