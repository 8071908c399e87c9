//go:build amd64 && !purego

package hashtable

import "golang.org/x/sys/cpu"

// simdAvailable reports whether the group scanner is using the SSE2
// asm fast path on this process. SSE2 is part of the amd64 baseline, so
// this is true on every supported amd64 target; we still consult
// golang.org/x/sys/cpu rather than hard-coding true, so a future build
// targeting a restricted amd64 profile degrades visibly instead of
// silently.
var simdAvailable = cpu.X86.HasSSE2
