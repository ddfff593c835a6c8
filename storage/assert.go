package storage

import "fmt"

// assert panics on invariant violations that a correct caller can never
// trigger (e.g. an internally-computed chunk id running off the end of a
// slice). It mirrors the original implementation's Assert/DebugAssert split:
// caller-supplied, data-dependent conditions must go through storage.Error
// instead, never assert.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
