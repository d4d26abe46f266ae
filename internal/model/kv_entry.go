package model

import "time"

// KVEntry is one row of the sqlite-backed key-value store.
type KVEntry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name used by the key-value store.
func (KVEntry) TableName() string {
	return "kv_entries"
}
