// hopper is a terminal endless runner: jump over obstacles, survive as
// long as you can, chase the score.
//
// Usage:
//
//	hopper play              - Play locally in the current terminal
//	hopper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadehop/hopper/internal/games/runner"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Hopper - an endless runner for your terminal",
	Long: `Hopper is a terminal endless runner. Hold nothing, press space,
and jump over whatever the ground throws at you.

Available commands:
  play     - Play locally in the current terminal
  serve    - Start SSH server for remote play

Examples:
  hopper play
  hopper play --seed 42
  hopper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
