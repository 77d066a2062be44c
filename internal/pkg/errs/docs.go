// Package errs provides the error taxonomy of the dispatch service.
//
// Every error type follows the same shape: a sentinel variable, a struct
// carrying the details, constructors with and without a cause, and an Unwrap
// method so callers classify with errors.Is.
//
// Classification used by the inbound adapters:
//   - ErrObjectNotFound: the requested aggregate does not exist for the tenant
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: malformed input (see IsValidation)
//   - ErrBusinessRuleViolated: the request conflicts with the current state
//   - ErrConcurrentModification: a versioned write lost a race (also a business rule violation)
//   - ErrUnauthorized: the tenant could not be established
//   - ErrStore: a persistence failure, never translated into a domain error
package errs
