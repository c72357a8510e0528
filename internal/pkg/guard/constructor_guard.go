// Package guard provides a lightweight defense against bypassing constructors.
// Commands, queries, and value objects embed a ConstructorGuard so that zero-value
// instances can be detected before they reach business logic.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value is invalid, so any struct that embeds a guard and was not built
// through its constructor fails validation.
//
// Example:
//
//	type RegisterUserCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterUserCommand(name string) (RegisterUserCommand, error) {
//	    if name == "" {
//	        return RegisterUserCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return RegisterUserCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterUserCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
