package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems/factory"
)

// newTestECS builds a headless world with a collision space and walls from
// a character grid. No renderers, no audio device, no input polling.
func newTestECS(t *testing.T, rows []string) *ecs.ECS {
	t.Helper()

	lvl := leveldata.MustParseGrid(rows)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e,
		int(lvl.PixelWidth()), int(lvl.PixelHeight()),
		cfg.Level.SpaceCellSize, cfg.Level.SpaceCellSize,
	)
	for _, s := range lvl.Solids {
		factory.CreateWall(e, s.X, s.Y, s.W, s.H)
	}
	return e
}

// pressKey fakes a held key without touching the real keyboard.
func pressKey(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current[action] = true
}

// tapKey fakes a key that went down this frame.
func tapKey(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous[action] = false
	input.Current[action] = true
}

// releaseKeys clears the fake keyboard, moving current into previous.
func releaseKeys(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}
