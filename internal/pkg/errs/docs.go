// Package errs provides standardized error types for the commerce application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure taxonomy of the API surface:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a constraint
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - UnauthenticatedError: no authenticated identity is present
//   - ForbiddenError: the actor is not permitted to perform the operation
//   - InvalidStateError: the operation is illegal in the object's current state
//   - VersionIsInvalidError: an optimistic-concurrency write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
package errs
