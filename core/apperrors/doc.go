// Package apperrors defines the error taxonomy shared by every layer of the service.
//
// Callers wrap these sentinels with fmt.Errorf("...: %w", err) and the HTTP
// boundary maps them to status codes with errors.Is:
//
//   - ErrExternalServiceUnavailable: an upstream data source could not be reached (503).
//   - ErrNotFound: the requested record or artifact does not exist (404).
//   - ErrValidation: the request carried invalid input (400).
//   - ErrInternal: a store or rendering failure during a valid request (500).
package apperrors
