// Package errs provides standardized error types for the parcel service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind in the service's taxonomy:
//   - ObjectNotFoundError: a referenced object does not resolve
//   - ConflictError: a write collided with existing state (duplicate key)
//   - PreconditionFailedError: object state forbids the requested operation
//   - ForbiddenError: the caller may not act on this object
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// The HTTP adapter relies on the sentinels to translate failures into status
// codes, so new error conditions should reuse an existing kind where possible.
package errs
