package runner

import (
	"math/rand"

	"github.com/arcadehop/hopper/internal/config"
)

// Cloud is a decorative upper-screen entity drifting at its own slow
// speed, independent of session speed.
type Cloud struct {
	X, Y float64
	Size float64
}

// TreeKind selects one of two tree appearances.
type TreeKind int

const (
	TreeRound TreeKind = iota
	TreePointy
)

// Tree is a decorative ground-aligned entity moving at session speed.
type Tree struct {
	X    float64
	Size float64
	Kind TreeKind
}

// Backdrop owns the ambient scenery. It is purely cosmetic: it never
// reads or affects collision, score, or speed, and follows the same
// advance/retire/compact lifecycle as the obstacle field with its own
// independent spawn probabilities.
type Backdrop struct {
	clouds  []Cloud
	trees   []Tree
	rng     *rand.Rand
	worldW  float64
	groundY float64
	cfg     config.BackdropConfig
}

// NewBackdrop creates an empty backdrop with the given RNG seed.
func NewBackdrop(seed int64, worldW, groundY float64, cfg config.BackdropConfig) *Backdrop {
	b := &Backdrop{
		clouds:  make([]Cloud, 0, 8),
		trees:   make([]Tree, 0, 8),
		worldW:  worldW,
		groundY: groundY,
		cfg:     cfg,
	}
	b.Reset(seed)
	return b
}

// Reset clears all entities and reseeds the RNG.
func (b *Backdrop) Reset(seed int64) {
	b.clouds = b.clouds[:0]
	b.trees = b.trees[:0]
	b.rng = rand.New(rand.NewSource(seed))
}

// Update advances and retires scenery, then rolls the independent spawn
// chances. Clouds use their own fixed slow speed; trees scroll with the
// session so the ground reads as one surface.
func (b *Backdrop) Update(dt, speed float64) {
	for i := range b.clouds {
		b.clouds[i].X -= b.cfg.CloudSpeed * dt
	}
	liveClouds := b.clouds[:0]
	for _, c := range b.clouds {
		if c.X+c.Size > 0 {
			liveClouds = append(liveClouds, c)
		}
	}
	b.clouds = liveClouds

	for i := range b.trees {
		b.trees[i].X -= speed * dt
	}
	liveTrees := b.trees[:0]
	for _, t := range b.trees {
		if t.X+t.Size > 0 {
			liveTrees = append(liveTrees, t)
		}
	}
	b.trees = liveTrees

	if b.rng.Float64() < b.cfg.CloudChance*dt {
		b.clouds = append(b.clouds, Cloud{
			X:    b.worldW,
			Y:    b.cfg.CloudMinY + b.rng.Float64()*(b.cfg.CloudMaxY-b.cfg.CloudMinY),
			Size: b.cfg.CloudMinSize + b.rng.Float64()*(b.cfg.CloudMaxSize-b.cfg.CloudMinSize),
		})
	}

	if b.rng.Float64() < b.cfg.TreeChance*dt {
		kind := TreeRound
		if b.rng.Intn(2) == 1 {
			kind = TreePointy
		}
		b.trees = append(b.trees, Tree{
			X:    b.worldW,
			Size: b.cfg.TreeMinSize + b.rng.Float64()*(b.cfg.TreeMaxSize-b.cfg.TreeMinSize),
			Kind: kind,
		})
	}
}

// Clouds returns the active cloud entities.
func (b *Backdrop) Clouds() []Cloud {
	return b.clouds
}

// Trees returns the active tree entities.
func (b *Backdrop) Trees() []Tree {
	return b.trees
}
