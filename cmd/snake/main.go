// snake is a terminal snake game with walls, doors and teleporters.
//
// Usage:
//
//	snake                - Open the menu and play
//	snake play           - Same as above
//	snake serve          - Start SSH server for remote play
//	snake scores         - Show high scores and stats
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom YAML config
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Frames per second (default from config)
//	--seed <value>       - RNG seed for reproducible food placement
//	--db <path>          - Scores database (default: ~/.snake/scores.db)
//	--log-file <path>    - Write logs to this file
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Snake on a walled field with a periodic door and a corner teleporter.

Controls:
  Arrows/WASD/HJKL  - Turn
  P/Esc             - Pause
  R                 - Restart after game over
  B                 - Back to menu (paused or game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  snake
  snake --difficulty hard
  snake --seed 42 --fps 30
  snake serve --ssh :2222
  snake scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameID is the registered game every command works with.
const gameID = snake.ID
