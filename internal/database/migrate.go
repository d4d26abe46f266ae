package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/internal/model"
)

// RunMigrations creates or updates the tables the key-value store needs.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return nil
}
