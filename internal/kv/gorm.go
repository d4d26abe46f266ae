package kv

import (
	"context"
	stderrors "errors"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/model"
)

// GormStore keeps entries in the kv_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store over db. The kv_entries table must already
// exist; see database.RunMigrations.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get implements Store.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	err := s.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.StorageUnavailable("read "+key, err)
	}
	return entry.Value, true, nil
}

// Set implements Store.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return apperrors.StorageUnavailable("write "+key, err)
	}
	return nil
}

// Delete implements Store.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&model.KVEntry{}, "entry_key = ?", key).Error; err != nil {
		return apperrors.StorageUnavailable("delete "+key, err)
	}
	return nil
}

// Keys implements Store. Prefix matching happens in Go because LIKE treats
// the underscores in backup keys as wildcards.
func (s *GormStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var all []string
	if err := s.db.WithContext(ctx).Model(&model.KVEntry{}).Pluck("entry_key", &all).Error; err != nil {
		return nil, apperrors.StorageUnavailable("list keys", err)
	}
	keys := make([]string, 0, len(all))
	for _, k := range all {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
