// Package config loads the application configuration from config.yml,
// applies environment overrides (PORT, DATASET_PATH, DATASET_BACKEND,
// LOG_LEVEL, LOG_FILE) and validates the result.
package config
