//go:build !amd64 || purego

package hashtable

// simdAvailable is false on every platform without the SSE2 asm match
// routine; the scalar byte-by-byte scanner in match_generic.go is used
// instead.
const simdAvailable = false
