package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"catalogkeeper/internal/client/storage"
)

var clientIDKey = []byte("client_id")

// GetClientID returns the persistent client instance id
func (s *Storage) GetClientID(ctx context.Context) (string, error) {
	var id string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		data := bucket.Get(clientIDKey)
		if data == nil {
			return storage.ErrClientIDNotFound
		}

		id = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return id, nil
}

// SaveClientID stores the client instance id
func (s *Storage) SaveClientID(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMeta)
		if bucket == nil {
			return fmt.Errorf("meta bucket not found")
		}

		if err := bucket.Put(clientIDKey, []byte(id)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})
}
