package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/archetypes"
	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
)

// CreateSession starts a fresh run: full lives, zero score, playing.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Lives: cfg.Player.StartingLives,
		Phase: cfg.PhasePlaying,
	})
	return session
}

// CreateSessionSnapshot seeds a scene with a finished run's state, used by
// the end screen to show the outcome.
func CreateSessionSnapshot(ecs *ecs.ECS, data components.SessionData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, data)
	return session
}
