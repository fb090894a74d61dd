package storage

import "context"

// CredentialStorage defines the durable slot that holds the bearer token
// between application runs. It is a single value with get/set/remove
// semantics; only the session manager writes it.
type CredentialStorage interface {
	// SaveCredential stores the bearer token, replacing any previous value
	SaveCredential(ctx context.Context, token string) error

	// GetCredential retrieves the stored bearer token.
	// Returns ErrCredentialNotFound if the slot is empty.
	GetCredential(ctx context.Context) (string, error)

	// DeleteCredential empties the slot (logout). Deleting an already
	// empty slot is not an error.
	DeleteCredential(ctx context.Context) error
}

// MetadataStorage defines storage for client instance metadata.
type MetadataStorage interface {
	// GetClientID returns the persistent client instance id.
	// Returns ErrClientIDNotFound if none has been generated yet.
	GetClientID(ctx context.Context) (string, error)

	// SaveClientID stores the client instance id
	SaveClientID(ctx context.Context, id string) error
}
