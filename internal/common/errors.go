// Package common defines sentinel errors shared by the storage, service and
// CLI layers of SmartTraffic. Callers should use errors.Is to match these
// values; lower layers wrap them with context via fmt.Errorf("...: %w").
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")

	// Credential store errors.
	ErrDuplicateUser      = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Input validation errors (missing fields, mismatched confirmation, ...).
	ErrValidation = errors.New("validation error")
)
