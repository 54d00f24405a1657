package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems/factory"
)

// testWorlds builds a 2x2 level table large enough for the default spawn
// point.
func testWorlds(t *testing.T) [][]*leveldata.Level {
	t.Helper()

	rows := []string{
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
		"##########",
	}
	return [][]*leveldata.Level{
		{leveldata.MustParseGrid(rows), leveldata.MustParseGrid(rows)},
		{leveldata.MustParseGrid(rows), leveldata.MustParseGrid(rows)},
	}
}

func newSessionECS(t *testing.T) (*ecs.ECS, *components.SessionData) {
	t.Helper()

	e := newTestECS(t, []string{
		"          ",
		"##########",
	})
	session := GetOrCreateSession(e)
	factory.CreateLevel(e, testWorlds(t))
	factory.LoadLevel(e, 0, 0)
	return e, session
}

func TestSessionDefaults(t *testing.T) {
	e := newTestECS(t, []string{
		"  ",
		"##",
	})
	session := GetOrCreateSession(e)

	assert.Equal(t, cfg.Player.StartingLives, session.Lives)
	assert.Equal(t, cfg.PhasePlaying, session.Phase)
	assert.Zero(t, session.Score)
	assert.Zero(t, session.World)
	assert.Zero(t, session.Level)
}

func TestAdvanceMovesToNextLevel(t *testing.T) {
	e, session := newSessionECS(t)

	session.PendingAdvance = true
	UpdateSession(e)

	assert.Equal(t, 0, session.World)
	assert.Equal(t, 1, session.Level)
	assert.False(t, session.PendingAdvance)
	assert.Equal(t, cfg.PhasePlaying, session.Phase)
}

func TestAdvanceRollsOverToNextWorld(t *testing.T) {
	e, session := newSessionECS(t)

	factory.LoadLevel(e, 0, 1)
	session.PendingAdvance = true
	UpdateSession(e)

	assert.Equal(t, 1, session.World)
	assert.Equal(t, 0, session.Level)
}

func TestAdvancePastLastLevelWins(t *testing.T) {
	e, session := newSessionECS(t)

	factory.LoadLevel(e, 1, 1)
	session.PendingAdvance = true
	UpdateSession(e)

	assert.Equal(t, cfg.PhaseWon, session.Phase)
}

func TestScoreAndLivesSurviveLevelTransition(t *testing.T) {
	e, session := newSessionECS(t)
	session.Score = 750
	session.Lives = 2

	session.PendingAdvance = true
	UpdateSession(e)

	assert.Equal(t, 750, session.Score)
	assert.Equal(t, 2, session.Lives)
}

func TestTransitionRepositionsSurvivingPlayer(t *testing.T) {
	e, session := newSessionECS(t)

	playerBefore, ok := components.Player.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(playerBefore).Object
	obj.X = 400

	session.PendingAdvance = true
	UpdateSession(e)

	playerAfter, ok := components.Player.First(e.World)
	require.True(t, ok)
	assert.Equal(t, playerBefore.Entity(), playerAfter.Entity(), "player entity survives the swap")
	assert.Equal(t, cfg.Player.SpawnX, obj.X)
	assert.Equal(t, cfg.Player.SpawnY, obj.Y)
}
