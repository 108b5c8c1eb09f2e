// Package errs provides standardized error types for the storefront engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For when an order status does not permit an operation
//   - CodeMismatchError: For when a handover code or OTP does not match
//   - PreconditionUnmetError: For when a business precondition fails before the main check
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The transition, code-mismatch, and precondition errors form the engine's
// caller-facing taxonomy: handlers surface them verbatim so the calling UI
// can tell the operator exactly what is missing, and none of them are retried
// by the engine itself.
package errs
