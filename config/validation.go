package config

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateConfig checks the configuration for values the application cannot run with
func ValidateConfig(cfg *Config) error {
	if err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.ServerHost, validation.Required),
		validation.Field(&cfg.ServerPort, validation.Required, validation.By(validPort)),
		validation.Field(&cfg.DefaultCategory, validation.Required),
		validation.Field(&cfg.LogLevel, validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return err
	}

	s := &cfg.Storage
	return validation.ValidateStruct(s,
		validation.Field(&s.Driver, validation.Required, validation.In(DriverSQLite, DriverMemory, DriverDisabled)),
		validation.Field(&s.Path, validation.When(s.Driver == DriverSQLite, validation.Required)),
		validation.Field(&s.Key, validation.Required),
		validation.Field(&s.LegacyKey,
			validation.Required,
			validation.NotIn(s.Key).Error("must differ from the storage key"),
		),
		validation.Field(&s.QuotaBytes, validation.Min(int64(0))),
	)
}

func validPort(value interface{}) error {
	port, err := strconv.Atoi(value.(string))
	if err != nil || port < 1 || port > 65535 {
		return validation.NewError("validation_port", "must be a TCP port between 1 and 65535")
	}
	return nil
}
