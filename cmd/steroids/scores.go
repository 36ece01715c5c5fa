package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arcadeworks/steroids/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Also show this player's personal best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	scoresHeadStyle  = lipgloss.NewStyle().Faint(true)
	scoresRowStyle   = lipgloss.NewStyle()
	scoresTopStyle   = lipgloss.NewStyle().Bold(true)
)

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Scores.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println(scoresTitleStyle.Render("STEROIDS - High Scores"))
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet. Run 'steroids play' to set the first one.")
		return nil
	}

	fmt.Println(scoresHeadStyle.Render(fmt.Sprintf("  %-4s  %-16s  %-8s  %-6s  %s",
		"Rank", "Player", "Score", "Level", "Date")))
	for i, entry := range scores {
		row := fmt.Sprintf("  %-4d  %-16s  %-8d  %-6d  %s",
			i+1, entry.Player, entry.Score, entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			fmt.Println(scoresTopStyle.Render(row))
		} else {
			fmt.Println(scoresRowStyle.Render(row))
		}
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best overall: %d\n", best)
	}
	if flagScoresPlayer != "" {
		best, err := store.PlayerBest(flagScoresPlayer)
		if err != nil {
			return err
		}
		fmt.Printf("Best for %s: %d\n", flagScoresPlayer, best)
	}
	return nil
}
