package config

// ServerConfig contains the HTTP server configuration.
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins" validate:"omitempty,dive,required"`
}

// DatasetConfig selects the dataset backend and source.
type DatasetConfig struct {
	// Backend is "csv" (zip archive or directory of CSV files) or
	// "sqlite" (embedded store).
	Backend string `yaml:"backend" validate:"omitempty,oneof=csv sqlite"`
	Path    string `yaml:"path" validate:"required"`
}

// QueryConfig bounds the year parameter accepted by the API.
type QueryConfig struct {
	MinYear int `yaml:"minYear" validate:"omitempty,gt=0"`
	MaxYear int `yaml:"maxYear" validate:"omitempty,gtefield=MinYear"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Dataset DatasetConfig `yaml:"dataset" validate:"required"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}
