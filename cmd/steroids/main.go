// steroids is a terminal Asteroids game, playable locally or over SSH.
//
// Usage:
//
//	steroids play            - Play in the current terminal
//	steroids serve           - Start an SSH server for remote play
//	steroids scores          - Show the high-score table
//	steroids version         - Print the version
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadeworks/steroids/internal/assets"
	"github.com/arcadeworks/steroids/internal/config"
	"github.com/arcadeworks/steroids/internal/entity"
	"github.com/arcadeworks/steroids/internal/rules"
)

var (
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "steroids",
	Short: "Asteroids in your terminal",
	Long: `steroids is a terminal rendition of the Asteroids arcade game.

Fly the ship with A/D and W, shoot with SPACE, teleport out of danger
with T. Asteroids break into smaller ones until they are dust.

Examples:
  steroids play
  steroids play --seed 42
  steroids serve
  steroids scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Scores.Path = flagDBPath
	}
	return cfg, nil
}

// loadGameData builds the shape catalog and level progression from
// the configured files, falling back to the embedded defaults.
func loadGameData(cfg config.Config) (*entity.Catalog, []rules.Level, error) {
	shapeData := assets.Asteroids
	if cfg.Assets.Shapes != "" {
		data, err := os.ReadFile(cfg.Assets.Shapes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read shapes %s: %w", cfg.Assets.Shapes, err)
		}
		shapeData = data
	}
	catalog, err := entity.LoadCatalog(bytes.NewReader(shapeData))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load shape catalog: %w", err)
	}

	levelData := assets.Levels
	if cfg.Assets.Levels != "" {
		data, err := os.ReadFile(cfg.Assets.Levels)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read levels %s: %w", cfg.Assets.Levels, err)
		}
		levelData = data
	}
	levels, err := rules.LoadLevels(bytes.NewReader(levelData))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load levels: %w", err)
	}

	return catalog, levels, nil
}
