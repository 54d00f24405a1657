package systems

import (
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/koopaeng/koopa-engine/config"
)

// NewUpdateQuit creates a system that leaves the current scene for the
// menu when the quit key is pressed, so Escape works mid-game and not
// just on the title screen.
func NewUpdateQuit(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}
