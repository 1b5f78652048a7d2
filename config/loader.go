package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default year bounds accepted by the API when the config leaves them unset.
const (
	DefaultMinYear = 1800
	DefaultMaxYear = 2100
)

// LoadAppConfig loads and validates the application configuration. The first
// readable path wins; environment overrides are applied after the file.
func LoadAppConfig(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "/etc/railatlas/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Dataset.Backend == "" {
		c.Dataset.Backend = "csv"
	}
	if c.Query.MinYear == 0 {
		c.Query.MinYear = DefaultMinYear
	}
	if c.Query.MaxYear == 0 {
		c.Query.MaxYear = DefaultMaxYear
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 5
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 30
	}
}

func (c *AppConfig) applyEnvOverrides() {
	if v := getEnvInt("PORT"); v > 0 {
		c.Server.Port = v
	}
	if v := os.Getenv("DATASET_PATH"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("DATASET_BACKEND"); v != "" {
		c.Dataset.Backend = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
