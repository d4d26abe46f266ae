// Package kv provides the origin-scoped key-value stores that hold the
// serialized recipe list.
package kv

import (
	"context"
	stderrors "errors"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists the keys that start with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// ErrDisabled is returned by the Disabled store for every operation.
var ErrDisabled = stderrors.New("storage is disabled")

// Disabled is a Store that rejects everything.
type Disabled struct{}

func (Disabled) Get(context.Context, string) (string, bool, error) {
	return "", false, apperrors.StorageUnavailable("read", ErrDisabled)
}

func (Disabled) Set(context.Context, string, string) error {
	return apperrors.StorageUnavailable("write", ErrDisabled)
}

func (Disabled) Delete(context.Context, string) error {
	return apperrors.StorageUnavailable("delete", ErrDisabled)
}

func (Disabled) Keys(context.Context, string) ([]string, error) {
	return nil, apperrors.StorageUnavailable("list keys", ErrDisabled)
}
