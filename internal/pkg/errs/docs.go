// Package errs provides the error taxonomy shared by every layer of the parcel
// routing service. Each kind of failure is exposed twice: as a sentinel value
// suitable for errors.Is, and as a struct type carrying the details of the
// failure for errors.As.
//
// The package includes the following error kinds:
//   - ValueIsInvalidError: a value violates a field invariant
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ValueIsRequiredError: a required reference or value is missing
//   - ObjectNotFoundError: an identifier does not exist in a store
//   - ObjectAlreadyExistsError: an insert collides with an identifier or business key
//   - ReferenceIsUnresolvableError: a name refers to an object that does not exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Errors are raised at the call site that detects them and propagate unchanged;
// the presentation layer decides how each kind is rendered.
package errs
