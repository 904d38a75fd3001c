// Package errs provides the standardized error types used across the parcel
// marketplace core.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying error details
//   - constructor functions with and without a cause
//   - Error() formatting and Unwrap() to the sentinel
//
// The taxonomy maps one-to-one onto the caller-visible failure kinds:
// ValueIsRequired/ValueIsInvalid/ValueIsOutOfRange (validation, no mutation
// attempted), Unauthorized (wrong role or non-ownership), ObjectNotFound and
// PreconditionFailed (missing entity or lost race), and InsufficientBalance
// (declined debit, carries required/current amounts). Anything else surfaces
// as a generic internal error after a full transaction rollback.
package errs
