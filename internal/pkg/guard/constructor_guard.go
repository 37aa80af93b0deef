// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so any struct created without its constructor is
// detectable.
//
// Example:
//
//	var ErrBillNotConstructed = errors.New("Bill must be created via NewBill")
//
//	type Bill struct {
//	    total int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBill(total int) Bill {
//	    return Bill{total: total, guard: guard.NewConstructorGuard()}
//	}
//
//	func (b Bill) Validate() error {
//	    return b.guard.Validate(ErrBillNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
