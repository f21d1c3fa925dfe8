package runner

import (
	"github.com/arcadehop/hopper/internal/core"
)

// Hitbox insets in world units. The drawn glyphs carry visual padding, so
// both boxes shrink before the overlap test; a near-miss that looks clear
// on screen must not end the run.
const (
	playerInsetSide   = 10
	playerInsetTop    = 10
	playerInsetBottom = 15

	obstacleInsetSide = 5
	obstacleInsetTop  = 10
)

// PlayerHitbox shrinks a player bounding box to its fair collision area.
func PlayerHitbox(r core.Rect) core.Rect {
	return r.Inset(playerInsetSide, playerInsetSide, playerInsetTop, playerInsetBottom)
}

// ObstacleHitbox shrinks an obstacle bounding box to its fair collision
// area. Obstacles sit on the ground, so only the top shrinks vertically.
func ObstacleHitbox(r core.Rect) core.Rect {
	return r.Inset(obstacleInsetSide, obstacleInsetSide, obstacleInsetTop, 0)
}

// Collides reports whether a player box overlaps an obstacle box after
// both are shrunk. Pure and deterministic: no state, no side effects.
func Collides(player, obstacle core.Rect) bool {
	return PlayerHitbox(player).Intersects(ObstacleHitbox(obstacle))
}
