package geolib

import assert "github.com/arl/assertgo"

// assertTrue checks an internal invariant that should never fail on correct
// input. It compiles to a no-op unless the module is built with -tags debug.
func assertTrue(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

// assertFalse checks the negation of an internal invariant. It compiles to
// a no-op unless the module is built with -tags debug.
func assertFalse(cond bool, format string, args ...interface{}) {
	assert.False(cond, format, args...)
}
