// Package guard holds the ConstructorGuard used by every value object and
// query in sensorcoverage to tell a constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether a value went through its constructor.
//
// Embed it as an unexported field and set it with NewConstructorGuard inside
// the constructor:
//
//	type Span struct {
//	    left, right int
//	    guard       guard.ConstructorGuard
//	}
//
//	func (s Span) Validate() error {
//	    return s.guard.Validate(ErrSpanIsNotConstructed)
//	}
//
// The zero value reports "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
