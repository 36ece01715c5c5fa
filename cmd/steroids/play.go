package main

import (
	"bufio"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/steroids/internal/draw"
	"github.com/arcadeworks/steroids/internal/geometry"
	"github.com/arcadeworks/steroids/internal/loop"
	"github.com/arcadeworks/steroids/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, levels, err := loadGameData(cfg)
	if err != nil {
		return err
	}

	// Finished games go to the score table; play works fine without it.
	// Save failures surface after the terminal leaves raw mode.
	var onGameOver func(score, level int)
	var saveErr error
	if store, err := storage.Open(cfg.Scores.Path); err == nil {
		defer store.Close()
		player := localPlayerName()
		onGameOver = func(score, level int) {
			if _, err := store.SaveScore(player, score, level); err != nil {
				saveErr = err
			}
		}
	} else {
		fmt.Fprintf(os.Stderr, "scores disabled: %v\n", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(reader, os.Stdout, loop.Options{
		Catalog:    catalog,
		Levels:     levels,
		Bounds:     geometry.Bounds{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		Seed:       flagSeed,
		TermSize:   draw.StdoutTermSize,
		OnGameOver: onGameOver,
	})
	_ = term.Restore(fd, oldState)
	if saveErr != nil {
		fmt.Fprintf(os.Stderr, "saving score failed: %v\n", saveErr)
	}
	return runErr
}

func localPlayerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
