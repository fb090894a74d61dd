package shared

import "errors"

var (

	// auth errors
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidCredential  = errors.New("stored credential is malformed")
	ErrSessionExpired     = errors.New("session expired")

	// transport errors
	ErrNetworkFailure = errors.New("no response from server")

	// catalog errors
	ErrNotFound = errors.New("product not found")
)
