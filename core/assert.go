package core

import "github.com/rotisserie/eris"

// Assert halts on a violated invariant when assertions are compiled in
// Reserved for logic defects: stale references, out-of-range slots
func Assert(cond bool, format string, args ...any) {
	if !assertionsEnabled || cond {
		return
	}
	panic(eris.Errorf("assertion failed: "+format, args...))
}

// AssertionsEnabled reports whether this build halts on assertions
func AssertionsEnabled() bool {
	return assertionsEnabled
}
