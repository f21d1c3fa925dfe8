package runner

import (
	"testing"

	"github.com/arcadehop/hopper/internal/core"
)

// Ground-aligned boxes at the default sizes: player 44x47, obstacle 40x50,
// both standing on y=270.
func groundedPlayer(x float64) core.Rect {
	return core.NewRect(x, 270-47, 44, 47)
}

func groundedObstacle(x float64) core.Rect {
	return core.NewRect(x, 270-50, 40, 50)
}

func TestCollidesOnDeepOverlap(t *testing.T) {
	player := groundedPlayer(60)
	obstacle := groundedObstacle(62)

	if !Collides(player, obstacle) {
		t.Error("fully overlapping boxes should collide")
	}
}

func TestNoCollisionWhenSeparated(t *testing.T) {
	player := groundedPlayer(60)
	obstacle := groundedObstacle(500)

	if Collides(player, obstacle) {
		t.Error("distant boxes should not collide")
	}
}

func TestInsetsForgiveNearMiss(t *testing.T) {
	// Raw boxes overlap by a sliver but the shrunk hitboxes clear each
	// other: player hitbox right edge is X+34, obstacle hitbox left edge is
	// X+5, so an obstacle starting 5 units before the player's raw right
	// edge still misses.
	player := groundedPlayer(0) // hitbox x: 10..34
	obstacle := groundedObstacle(35)

	if !player.Intersects(obstacle) {
		t.Fatal("test setup broken: raw boxes should overlap")
	}
	if Collides(player, obstacle) {
		t.Error("overlap confined to the visual padding should not collide")
	}

	// One unit deeper and the hitboxes touch
	obstacle = groundedObstacle(28)
	if !Collides(player, obstacle) {
		t.Error("overlap past the padding should collide")
	}
}

func TestJumpClearsObstacle(t *testing.T) {
	// Player directly above the obstacle but high enough that the bottom
	// inset keeps the hitboxes apart.
	obstacle := groundedObstacle(60)
	// Obstacle hitbox top is 270-50+10=230. Player hitbox bottom is
	// Y+H-15; clearing needs Y+32 < 230.
	player := core.NewRect(60, 195, 44, 47)

	if Collides(player, obstacle) {
		t.Error("airborne player above the obstacle hitbox should not collide")
	}

	// Sitting on the obstacle's head is a hit
	player = core.NewRect(60, 210, 44, 47)
	if !Collides(player, obstacle) {
		t.Error("player descending into the obstacle should collide")
	}
}

func TestObstacleHitboxKeepsGroundContact(t *testing.T) {
	r := groundedObstacle(100)
	hb := ObstacleHitbox(r)

	if hb.Bottom() != r.Bottom() {
		t.Errorf("obstacle hitbox bottom must stay at the ground: want %v, got %v", r.Bottom(), hb.Bottom())
	}
	if hb.Y != r.Y+obstacleInsetTop {
		t.Errorf("obstacle hitbox top inset: want %v, got %v", r.Y+obstacleInsetTop, hb.Y)
	}
}
