package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehop/hopper/internal/audio"
	"github.com/arcadehop/hopper/internal/core"
	"github.com/arcadehop/hopper/internal/games/runner"
	"github.com/arcadehop/hopper/internal/platform/tui"
	"github.com/arcadehop/hopper/internal/registry"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a local game session.

Controls:
  Space/Up/W - Jump (also starts a run and retries after game over)
  Down/S     - Fast fall while airborne
  Enter/R    - Start / retry
  Q/Ctrl+C   - Quit

Examples:
  hopper play
  hopper play --seed 42
  hopper play --mute
  hopper play --config ./my-hopper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size before Bubble Tea takes the screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation so Reset picks it up
	runner.SetConfigPath(flagConfig)

	game, err := registry.Create("hopper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Wire audio cues unless muted. The engine opens the speaker lazily;
	// a host with no audio device just plays silent.
	var engine *audio.Engine
	if !flagMute {
		if aware, ok := game.(core.AudioAware); ok {
			engine = audio.New()
			aware.AttachTones(engine)
		}
	}

	runErr := tui.Run(game, cfg)

	if engine != nil {
		engine.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
