package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialNotFound indicates that the credential slot is empty
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrClientIDNotFound indicates that no client id has been generated yet
	ErrClientIDNotFound = errors.New("client id not found")
)
