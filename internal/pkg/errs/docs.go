// Package errs provides the standardized error types used throughout the
// storefront application.
//
// Each error category follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is can classify
//
// The categories map onto the failure taxonomy of the order pipeline:
// ValueIsRequired/ValueIsInvalid/ValueIsOutOfRange for input validation,
// ObjectNotFound for absent carts, orders, and products, InvalidState for
// forbidden lifecycle transitions, and CatalogMismatch for client order
// payloads that no longer line up with the catalog.
package errs
