package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems/factory"
)

func TestFallingBodyLandsOnTileTop(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"        ",
		"        ",
		"########",
	})
	player := factory.CreatePlayer(e, 64, 0)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	for i := 0; i < 300 && physics.OnGround == nil; i++ {
		stepBody(player)
	}

	require.NotNil(t, physics.OnGround)
	groundTop := float64(3 * leveldata.TileSize)
	assert.InDelta(t, groundTop, obj.Bottom(), 0.001, "feet should snap to the tile top")
	assert.Zero(t, physics.SpeedY)
}

func TestRestingBodyStaysGrounded(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	groundTop := float64(leveldata.TileSize)
	player := factory.CreatePlayer(e, 64, groundTop-cfg.Player.Height)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	for i := 0; i < 10; i++ {
		stepBody(player)
		require.NotNil(t, physics.OnGround, "tick %d", i)
		assert.InDelta(t, groundTop, obj.Bottom(), 0.001, "tick %d", i)
	}
}

func TestSingleTilePlatformKeepsBodyGrounded(t *testing.T) {
	// One tile with no adjacent solids still counts as ground.
	e := newTestECS(t, []string{
		"   ",
		" # ",
	})
	tileTop := float64(leveldata.TileSize)
	player := factory.CreatePlayer(e, leveldata.TileSize, tileTop-cfg.Player.Height)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	for i := 0; i < 10; i++ {
		stepBody(player)
		require.NotNil(t, physics.OnGround, "tick %d", i)
		assert.InDelta(t, tileTop, obj.Bottom(), 0.001, "tick %d", i)
	}
}

func TestVerticalResolutionIdempotentAtRest(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	groundTop := float64(leveldata.TileSize)
	player := factory.CreatePlayer(e, 32, groundTop-cfg.Player.Height)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	resolveVertical(physics, obj)
	yAfterFirst := obj.Y
	require.NotNil(t, physics.OnGround)

	resolveVertical(physics, obj)
	assert.Equal(t, yAfterFirst, obj.Y)
	assert.NotNil(t, physics.OnGround)
}

func TestHorizontalMotionStopsAtWall(t *testing.T) {
	e := newTestECS(t, []string{
		"      # ",
		"      # ",
		"########",
	})
	groundTop := float64(2 * leveldata.TileSize)
	wallLeft := float64(6 * leveldata.TileSize)
	player := factory.CreatePlayer(e, 32, groundTop-cfg.Player.Height)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	hit := false
	for i := 0; i < 120; i++ {
		physics.SpeedX = cfg.Player.MoveSpeed
		stepBody(player)
		if physics.HitWall {
			hit = true
			break
		}
	}

	require.True(t, hit, "player never reached the wall")
	assert.Zero(t, physics.SpeedX)
	assert.LessOrEqual(t, obj.X+obj.W, wallLeft+0.001, "body must not overlap the wall")
}

func TestGravityClampsToMaxFallSpeed(t *testing.T) {
	physics := &components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	}

	for i := 0; i < 100; i++ {
		applyGravity(physics)
	}
	assert.Equal(t, cfg.Physics.MaxFallSpeed, physics.SpeedY)
}

func TestFreefallWithoutGround(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"        ",
	})
	player := factory.CreatePlayer(e, 32, 0)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	yBefore := obj.Y
	stepBody(player)

	assert.Nil(t, physics.OnGround)
	assert.Greater(t, obj.Y, yBefore)
}
