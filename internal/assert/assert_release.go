//go:build !debug

// Package assert provides debug-only invariant checks. Calls compile
// away to nothing when the debug build tag is absent, so they carry no
// runtime cost in a release build; callers still guard expensive
// arguments with `if assert.DEBUG { ... }` since Go evaluates call
// arguments even when the call body is empty.
package assert

// DEBUG reports whether Assert actually evaluates its test.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
