// Package guard implements a defensive pattern that ensures value objects,
// commands, and queries are only created through their designated constructor
// functions. A zero-value guard fails validation, so directly instantiated
// structs are rejected before they can bypass invariant checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built by its constructor.
// Embed one as a field and set it with NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed objects from zero values.
//
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}

	if notConstructed != nil {
		return notConstructed
	}

	return ErrDefaultConstructorGuard
}
