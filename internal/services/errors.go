package services

import "errors"

// Service-level errors. Handlers map these onto HTTP statuses with errors.Is;
// everything else surfaces as an internal error.
var (
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnership means the entity exists but belongs to another user.
	ErrOwnership = errors.New("not owned by user")

	// ErrInvalidInput means a request value failed a business rule that
	// struct validation cannot express (unknown enum value, bad reference).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate means a uniqueness rule was violated (taken email or
	// account name).
	ErrDuplicate = errors.New("already exists")

	// ErrCredentials means the login email/password pair did not match.
	ErrCredentials = errors.New("invalid credentials")
)
