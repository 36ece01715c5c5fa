// Package config loads the game's YAML configuration with environment
// variable overrides.
package config

import (
	"os"
	"path/filepath"
)

// Config is the full configuration for both local play and the SSH
// server.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Assets AssetsConfig `yaml:"assets"`
	SSH    SSHConfig    `yaml:"ssh"`
	Scores ScoresConfig `yaml:"scores"`
}

// ScreenConfig sets the logical play field. Entities move in this
// coordinate space; rendering scales it to the actual terminal.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AssetsConfig points at the shape and level data files. Empty paths
// select the embedded defaults.
type AssetsConfig struct {
	Shapes string `yaml:"shapes"`
	Levels string `yaml:"levels"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// ScoresConfig locates the high-score database.
type ScoresConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 640, Height: 480},
		SSH: SSHConfig{
			Host:        "0.0.0.0",
			Port:        "2222",
			HostKeyPath: ".ssh/steroids_ed25519",
		},
		Scores: ScoresConfig{Path: defaultScoresPath()},
	}
}

func defaultScoresPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "steroids.db"
	}
	return filepath.Join(home, ".steroids", "scores.db")
}
