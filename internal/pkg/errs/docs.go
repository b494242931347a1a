// Package errs provides standardized error types for the flowgic application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PermissionDeniedError: For when an actor's role does not allow an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// In addition to the structured types, the package exposes bare sentinels for
// workflow outcomes that carry no further detail: ErrVersionConflict for
// optimistic-lock mismatches, and ErrStatusUnchanged/ErrPaymentUnchanged for
// the no-op outcomes of status and payment operations.
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
