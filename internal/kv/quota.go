package kv

import (
	"context"
	"fmt"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
)

// QuotaStore rejects writes that would push the total size of keys plus
// values past a byte limit.
type QuotaStore struct {
	Store
	maxBytes int64
}

// WithQuota wraps store with a byte quota. A non-positive limit returns store
// unchanged.
func WithQuota(store Store, maxBytes int64) Store {
	if maxBytes <= 0 {
		return store
	}
	return &QuotaStore{Store: store, maxBytes: maxBytes}
}

// Set implements Store.
func (q *QuotaStore) Set(ctx context.Context, key, value string) error {
	used, err := q.usage(ctx, key)
	if err != nil {
		return err
	}
	if total := used + int64(len(key)+len(value)); total > q.maxBytes {
		return apperrors.StorageUnavailable("write "+key,
			fmt.Errorf("quota exceeded: %d of %d bytes", total, q.maxBytes))
	}
	return q.Store.Set(ctx, key, value)
}

// usage sums every entry except skip, which is about to be replaced.
func (q *QuotaStore) usage(ctx context.Context, skip string) (int64, error) {
	keys, err := q.Store.Keys(ctx, "")
	if err != nil {
		return 0, err
	}
	var total int64
	for _, k := range keys {
		if k == skip {
			continue
		}
		v, ok, err := q.Store.Get(ctx, k)
		if err != nil {
			return 0, err
		}
		if ok {
			total += int64(len(k) + len(v))
		}
	}
	return total, nil
}
