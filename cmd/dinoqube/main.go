// dinoqube is an endless runner for the terminal.
//
// Usage:
//
//	dinoqube play      - Play in the local terminal
//	dinoqube serve     - Start SSH server for remote play
//	dinoqube scores    - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dinoqube/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "dinoqube",
	Short: "Dino Qube - An endless runner in your terminal",
	Long: `Dino Qube is a terminal endless runner. Jump over cacti, rocks and
pterodactyls as the world speeds up, and chase the high score through
day and night.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  dinoqube play
  dinoqube play --difficulty hard
  dinoqube serve --ssh :2222
  dinoqube scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinoqube/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
