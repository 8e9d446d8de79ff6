// frogger is a terminal rendition of the classic lane-crossing arcade game.
//
// Usage:
//
//	frogger play             - Play the game
//	frogger serve            - Start SSH server for remote play
//	frogger scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.frogger/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "frogger",
	Short: "Frogger - hop across the road and river in your terminal",
	Long: `Frogger is a terminal rendition of the classic lane-crossing arcade
game. Guide the frog across a busy road and a hazardous river to fill
all five home slots and advance to the next level.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  frogger play
  frogger play --difficulty hard
  frogger serve --ssh :2222
  frogger scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
