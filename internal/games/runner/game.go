// Package runner implements hopper, a side-scrolling endless runner.
// The player jumps over procedurally spawned obstacles while speed and
// score ramp up; the first collision ends the run.
package runner

import (
	"time"

	"github.com/arcadehop/hopper/internal/config"
	"github.com/arcadehop/hopper/internal/core"
	"github.com/arcadehop/hopper/internal/registry"
)

// Audio cues, fixed constants per event kind.
var (
	jumpTone      = core.Tone{Freq: 440, Wave: core.WaveSquare, Duration: 90 * time.Millisecond}
	milestoneTone = core.Tone{Freq: 880, Wave: core.WaveSine, Duration: 120 * time.Millisecond}
	deathTone     = core.Tone{Freq: 150, Wave: core.WaveSaw, Duration: 350 * time.Millisecond}
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the runner session. It exclusively owns the player, the
// obstacle field, and the backdrop; components read only the session's
// speed and the world dimensions.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	player   *Player
	field    *Field
	backdrop *Backdrop

	phase     core.Phase
	score     float64
	speed     float64
	tickCount int
	runs      int // Completed start transitions; salts the per-run seed

	tones core.ToneSink
}

// New creates a new runner instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hopper"
}

// AttachTones wires an audio sink. Without one the session runs silent.
func (g *Game) AttachTones(sink core.ToneSink) {
	g.tones = sink
}

// Reset initializes the session into the Idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.player = NewPlayer(cfg.Player, cfg.Physics, cfg.World.GroundY)
	g.field = NewField(runtime.Seed, cfg.World.Width, cfg.World.GroundY, cfg.Obstacles)
	g.backdrop = NewBackdrop(runtime.Seed+1, cfg.World.Width, cfg.World.GroundY, cfg.Backdrop)

	g.phase = core.PhaseIdle
	g.score = 0
	g.speed = cfg.Progression.InitialSpeed
	g.tickCount = 0
	g.runs = 0
}

// Step advances the session by one tick. dt is the elapsed frame time
// normalized to the 60fps baseline; every per-tick constant is scaled by
// it so gameplay is frame-rate independent. While not Playing the tick is
// inert except for the start transition.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.phase != core.PhasePlaying {
		// The jump key doubles as start, the way runners traditionally do.
		if in.Has(core.ActionStart) || in.Has(core.ActionJump) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.backdrop.Update(dt, g.speed)

	if jumped := g.player.Update(in, dt); jumped {
		g.play(jumpTone)
	}

	if hit := g.field.Update(dt, g.speed, g.player.Rect()); hit {
		g.gameOver()
		return core.StepResult{State: g.State()}
	}

	prev := int(g.score)
	g.score += g.cfg.Progression.ScoreRate * dt
	if m := g.cfg.Progression.MilestoneEvery; m > 0 && int(g.score)/m > prev/m {
		g.play(milestoneTone)
	}

	g.speed = core.ClampF(g.speed+g.cfg.Progression.SpeedIncrement*dt, 0, g.cfg.Progression.MaxSpeed)

	return core.StepResult{State: g.State()}
}

// start is the single entry into Playing, used from both Idle and Over.
// It resets score and speed, clears the obstacle and ambient sequences,
// snaps the player to the ground, and resumes audio output in case the
// host started it suspended.
func (g *Game) start() {
	seed := g.runtime.Seed + int64(g.runs)*2
	g.runs++

	g.score = 0
	g.speed = g.cfg.Progression.InitialSpeed
	g.tickCount = 0
	g.player.Reset()
	g.field.Reset(seed)
	g.backdrop.Reset(seed + 1)

	if g.tones != nil {
		g.tones.Resume()
	}

	g.phase = core.PhasePlaying
}

// gameOver handles the terminal transition on the first collision.
func (g *Game) gameOver() {
	g.phase = core.PhaseOver
	g.play(deathTone)
}

// play emits a cue if a sink is attached. Fire-and-forget: gameplay never
// waits on audio.
func (g *Game) play(t core.Tone) {
	if g.tones != nil {
		g.tones.PlayTone(t)
	}
}

// State returns the current session state with the score floored.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: int(g.score),
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("hopper", func() registry.Game {
		return New()
	})
}
