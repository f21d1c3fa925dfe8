package runner

import (
	"math/rand"

	"github.com/arcadehop/hopper/internal/config"
	"github.com/arcadehop/hopper/internal/core"
)

// Kind selects one of two collision-equivalent obstacle appearances.
type Kind int

const (
	VariantA Kind = iota // cactus
	VariantB             // rock
)

// Obstacle is a ground-aligned hazard advancing left at session speed.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Kind    Kind
	Retired bool // Fully off-screen left, eligible for removal

	spawnX float64 // Where this obstacle was created; gap policy measures travel from here
}

// Rect returns the obstacle's visual bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Traveled returns the distance this obstacle has moved since spawn.
func (o Obstacle) Traveled() float64 {
	return o.spawnX - o.X
}

// Field owns the ordered sequence of active obstacles and the
// randomized-gap spawn policy. Insertion order is preserved so the gap is
// always measured against the most recently spawned obstacle.
type Field struct {
	active  []Obstacle
	rng     *rand.Rand
	worldW  float64
	groundY float64
	cfg     config.ObstaclesConfig
	nextGap float64 // Travel distance the newest obstacle must cover before the next spawn
}

// NewField creates a field with the given RNG seed.
func NewField(seed int64, worldW, groundY float64, cfg config.ObstaclesConfig) *Field {
	f := &Field{
		active:  make([]Obstacle, 0, 8),
		worldW:  worldW,
		groundY: groundY,
		cfg:     cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.active = f.active[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.nextGap = 0
}

// Update advances one tick: move every obstacle left at session speed,
// retire those fully past the left edge, compact the sequence, test the
// player against each survivor, and spawn at most one new obstacle once
// the newest has traveled its sampled gap. Returns true if any obstacle
// overlaps the player; evaluation order does not affect the outcome.
func (f *Field) Update(dt, speed float64, player core.Rect) bool {
	// Advance all entities first; removal happens in a separate compaction
	// pass so iteration never splices under itself.
	for i := range f.active {
		f.active[i].X -= speed * dt
		if f.active[i].X < -f.active[i].W {
			f.active[i].Retired = true
		}
	}

	live := f.active[:0]
	for _, o := range f.active {
		if !o.Retired {
			live = append(live, o)
		}
	}
	f.active = live

	hit := f.Collides(player)

	// A single spawn decision per tick, so no two obstacles can ever be
	// created at the same x in one tick.
	if f.shouldSpawn() {
		f.spawn(speed)
	}

	return hit
}

// Collides tests the player box against every active obstacle.
func (f *Field) Collides(player core.Rect) bool {
	for _, o := range f.active {
		if Collides(player, o.Rect()) {
			return true
		}
	}
	return false
}

// shouldSpawn reports whether the newest obstacle has traveled the
// sampled target gap. An empty field always spawns.
func (f *Field) shouldSpawn() bool {
	if len(f.active) == 0 {
		return true
	}
	newest := f.active[len(f.active)-1]
	return newest.Traveled() >= f.nextGap
}

// spawn creates a new obstacle off the right edge and samples the target
// gap for the one after it.
func (f *Field) spawn(speed float64) {
	kind := VariantA
	if f.rng.Intn(2) == 1 {
		kind = VariantB
	}

	f.active = append(f.active, Obstacle{
		X:      f.worldW,
		Y:      f.groundY - f.cfg.Height,
		W:      f.cfg.Width,
		H:      f.cfg.Height,
		Kind:   kind,
		spawnX: f.worldW,
	})

	f.nextGap = f.sampleGap(speed)
}

// sampleGap draws the next target gap: uniform in a speed-widened band,
// with a small chance of a short override that packs two obstacles close
// together as a difficulty spike.
func (f *Field) sampleGap(speed float64) float64 {
	min := f.cfg.GapBaseMin + speed*f.cfg.GapSpeedMin
	max := f.cfg.GapBaseMax + speed*f.cfg.GapSpeedMax

	gap := min
	if max > min {
		gap = min + f.rng.Float64()*(max-min)
	}

	if f.rng.Float64() < f.cfg.ShortGapChance {
		gap = f.cfg.ShortGap
	}
	return gap
}

// Active returns the current obstacle sequence in insertion order.
func (f *Field) Active() []Obstacle {
	return f.active
}
