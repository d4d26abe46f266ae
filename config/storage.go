package config

// StorageDriver selects the key-value store implementation.
type StorageDriver string

const (
	// DriverSQLite keeps the key-value store in a local sqlite file.
	DriverSQLite StorageDriver = "sqlite"
	// DriverMemory keeps everything in process memory; nothing survives a restart.
	DriverMemory StorageDriver = "memory"
	// DriverDisabled rejects every read and write, like a browser with storage turned off.
	DriverDisabled StorageDriver = "disabled"
)

// StorageConfig holds the key-value store settings
type StorageConfig struct {
	Driver StorageDriver
	Path   string

	// Key is the canonical location of the recipe list.
	Key string
	// LegacyKey is migrated into Key on load while it still holds data.
	LegacyKey string

	// QuotaBytes caps the total stored bytes; 0 disables the cap.
	QuotaBytes int64
}
