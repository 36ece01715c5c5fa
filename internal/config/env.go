package config

import "os"

// GetEnv returns the value of the environment variable named by the
// key, or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// applyEnv overrides file-sourced values from the environment, so a
// deployment can tune the server without shipping a config file.
func applyEnv(cfg *Config) {
	cfg.SSH.Host = GetEnv("STEROIDS_SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("STEROIDS_SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKeyPath = GetEnv("STEROIDS_SSH_HOST_KEY", cfg.SSH.HostKeyPath)
	cfg.Scores.Path = GetEnv("STEROIDS_SCORES_DB", cfg.Scores.Path)
	cfg.Assets.Shapes = GetEnv("STEROIDS_SHAPES", cfg.Assets.Shapes)
	cfg.Assets.Levels = GetEnv("STEROIDS_LEVELS", cfg.Assets.Levels)
}
