package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"catalogkeeper/internal/client/storage"
)

var credentialKey = []byte("current")

// SaveCredential stores the bearer token, replacing any previous value
func (s *Storage) SaveCredential(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(credentialKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save credential: %w", err)
		}

		return nil
	})
}

// GetCredential retrieves the stored bearer token
func (s *Storage) GetCredential(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(credentialKey)
		if data == nil {
			return storage.ErrCredentialNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteCredential empties the credential slot (logout)
func (s *Storage) DeleteCredential(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(credentialKey); err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		return nil
	})
}
