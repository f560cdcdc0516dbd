package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best rounds and overall stats from the scores database.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d scores.\n", n)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, lipgloss.NewStyle().Bold(true).Render("High Scores - Snake"))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' to set the first high score!")
		return nil
	}

	fmt.Fprintln(out, scoresTable(scores))

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f  Longest: %d  Steps: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LongestSnake, stats.TotalTicks)
	return nil
}

func scoresTable(scores []storage.ScoreEntry) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Length", "Steps", "Date")
	for i, s := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Length),
			strconv.FormatUint(s.Ticks, 10),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return t
}
