package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/takenotes/internal/client/storage"
)

// tokenKey - фиксированный ключ, под которым лежит access token
var tokenKey = []byte("accessToken")

// SaveToken stores the token string
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(tokenKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// LoadToken retrieves the stored token
func (s *Storage) LoadToken(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		data := bucket.Get(tokenKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		// data валиден только внутри транзакции
		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored token (logout)
func (s *Storage) DeleteToken(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(tokenKey); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
