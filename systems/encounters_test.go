package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems/factory"
	"github.com/koopaeng/koopa-engine/tags"
)

func TestStompAwardsScoreAndBounces(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"        ",
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)

	koopa := factory.CreateKoopa(e, 100, 3*leveldata.TileSize-cfg.Koopa.Height)
	koopaObj := components.Object.Get(koopa).Object

	// Player falling, feet above the koopa's center line.
	player := factory.CreatePlayer(e, 100, koopaObj.Y-cfg.Player.Height+8)
	physics := components.Physics.Get(player)
	physics.SpeedY = 5

	UpdateEncounters(e)

	assert.Equal(t, cfg.StateShellIdle, components.Koopa.Get(koopa).State)
	assert.Equal(t, cfg.Score.Stomp, session.Score)
	assert.InDelta(t, cfg.Player.JumpStrength*0.7, physics.SpeedY, 0.001, "stomp bounce")
	assert.Equal(t, cfg.Player.StartingLives, session.Lives)
}

func TestSideContactCostsALifeAndRespawns(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"        ",
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)

	koopaY := 3*leveldata.TileSize - cfg.Koopa.Height
	factory.CreateKoopa(e, 120, koopaY)

	player := factory.CreatePlayer(e, 100, koopaY)
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player).Object

	UpdateEncounters(e)

	assert.Equal(t, cfg.Player.StartingLives-1, session.Lives)
	assert.Equal(t, cfg.PhasePlaying, session.Phase)
	assert.Equal(t, playerData.SpawnX, obj.X)
	assert.Equal(t, playerData.SpawnY, obj.Y)
	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
	assert.Zero(t, session.Score, "no score for getting hit")
}

func TestSameTickDoubleContactCostsOneLife(t *testing.T) {
	e := newTestECS(t, []string{
		"            ",
		"############",
	})
	session := GetOrCreateSession(e)

	koopaY := leveldata.TileSize - cfg.Koopa.Height
	factory.CreateKoopa(e, 310, koopaY)
	factory.CreateKoopa(e, 320, koopaY)

	// Spawn far from both koopas, then walk into the overlap.
	player := factory.CreatePlayer(e, 40, koopaY)
	obj := components.Object.Get(player).Object
	obj.X = 300
	obj.Update()

	UpdateEncounters(e)

	assert.Equal(t, cfg.Player.StartingLives-1, session.Lives, "the respawn moves the player off the second koopa")
	assert.Equal(t, 40.0, obj.X)
}

func TestLastLifeEndsTheSession(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)
	session.Lives = 1

	koopaY := leveldata.TileSize - cfg.Koopa.Height
	factory.CreateKoopa(e, 110, koopaY)
	player := factory.CreatePlayer(e, 100, koopaY)
	obj := components.Object.Get(player).Object
	xBefore := obj.X

	UpdateEncounters(e)

	assert.Equal(t, 0, session.Lives)
	assert.Equal(t, cfg.PhaseGameOver, session.Phase)
	assert.Equal(t, xBefore, obj.X, "no respawn on the final hit")
}

func TestShelledPlayerKicksInsteadOfTakingDamage(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)

	koopaY := leveldata.TileSize - cfg.Koopa.Height
	koopa := factory.CreateKoopa(e, 110, koopaY)

	player := factory.CreatePlayer(e, 100, koopaY)
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)
	playerData.Mode = cfg.ModeShell
	physics.SpeedX = cfg.Player.MoveSpeed

	UpdateEncounters(e)

	koopaData := components.Koopa.Get(koopa)
	assert.Equal(t, cfg.StateShellSliding, koopaData.State)
	assert.Equal(t, cfg.DirectionRight, koopaData.Direction)
	assert.Equal(t, cfg.Score.Kick, session.Score)
	assert.Equal(t, cfg.Player.StartingLives, session.Lives, "shell mode absorbs the contact")
}

func TestCoinCollectsExactlyOnce(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)

	playerY := leveldata.TileSize - cfg.Player.Height
	factory.CreateCoin(e, 105, playerY+5)
	factory.CreatePlayer(e, 100, playerY)

	UpdateEncounters(e)
	assert.Equal(t, cfg.Score.Coin, session.Score)

	coins := 0
	tags.Coin.Each(e.World, func(entry *donburi.Entry) { coins++ })
	assert.Zero(t, coins, "collected coin is gone the same tick")

	// A second pass over the same spot pays nothing.
	UpdateEncounters(e)
	assert.Equal(t, cfg.Score.Coin, session.Score)
}

func TestCompletionMarginBoundary(t *testing.T) {
	e := newTestECS(t, []string{
		"                    ",
		"####################",
	})
	session := GetOrCreateSession(e)

	grid := leveldata.MustParseGrid([]string{
		"                    ",
		"####################",
	})
	levelEntry := factory.CreateLevel(e, [][]*leveldata.Level{{grid}})
	components.Level.Get(levelEntry).Current = grid

	playerY := leveldata.TileSize - cfg.Player.Height
	player := factory.CreatePlayer(e, 0, playerY)
	obj := components.Object.Get(player).Object

	threshold := grid.PixelWidth() - cfg.Level.CompleteMargin

	obj.X = threshold - 1
	obj.Update()
	UpdateEncounters(e)
	assert.False(t, session.PendingAdvance, "one pixel short is not complete")

	obj.X = threshold + 1
	obj.Update()
	UpdateEncounters(e)
	assert.True(t, session.PendingAdvance)
}

func TestEncountersIgnoredOutsidePlayingPhase(t *testing.T) {
	e := newTestECS(t, []string{
		"        ",
		"########",
	})
	session := GetOrCreateSession(e)
	session.Phase = cfg.PhaseGameOver

	koopaY := leveldata.TileSize - cfg.Koopa.Height
	factory.CreateKoopa(e, 110, koopaY)
	factory.CreatePlayer(e, 100, koopaY)

	UpdateEncounters(e)

	assert.Equal(t, cfg.Player.StartingLives, session.Lives)
	assert.Zero(t, session.Score)
}
