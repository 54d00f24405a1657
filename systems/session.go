package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/systems/factory"
)

// UpdateSession performs the level advance flagged by the encounter
// resolver and handles the debug level select keys. Runs after
// UpdateEncounters so a transition always happens between ticks, never in
// the middle of one.
func UpdateSession(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Phase != cfg.PhasePlaying {
		return
	}

	input := getOrCreateInput(ecs)
	handleLevelSelect(ecs, session, input)

	if !session.PendingAdvance {
		return
	}
	session.PendingAdvance = false

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	world, lvl := session.World, session.Level+1
	if lvl >= len(level.Worlds[world]) {
		world++
		lvl = 0
	}
	if world >= len(level.Worlds) {
		session.Phase = cfg.PhaseWon
		return
	}

	factory.LoadLevel(ecs, world, lvl)
}

// handleLevelSelect jumps straight to a world or level, clamped to what
// actually exists. Keys 1-5 pick a world, 7-9 pick a level inside the
// current world.
func handleLevelSelect(ecs *ecs.ECS, session *components.SessionData, input *components.InputData) {
	worldKeys := []cfg.ActionID{
		cfg.ActionWorld1, cfg.ActionWorld2, cfg.ActionWorld3,
		cfg.ActionWorld4, cfg.ActionWorld5,
	}
	for i, action := range worldKeys {
		if GetAction(input, action).JustPressed {
			factory.LoadLevel(ecs, i, 0)
			return
		}
	}

	levelKeys := []cfg.ActionID{cfg.ActionLevel1, cfg.ActionLevel2, cfg.ActionLevel3}
	for i, action := range levelKeys {
		if GetAction(input, action).JustPressed {
			factory.LoadLevel(ecs, session.World, i)
			return
		}
	}
}

// GetOrCreateSession returns the singleton Session component, creating a
// fresh run if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
		components.Session.SetValue(entry, components.SessionData{
			Lives: cfg.Player.StartingLives,
			Phase: cfg.PhasePlaying,
		})
	}
	return components.Session.Get(entry)
}

// SessionPhase reports the current phase for scene transitions.
func SessionPhase(ecs *ecs.ECS) cfg.Phase {
	return GetOrCreateSession(ecs).Phase
}

// SessionScore reports the current score, for end-screen display.
func SessionScore(ecs *ecs.ECS) int {
	return GetOrCreateSession(ecs).Score
}
