package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	worlds       [][]*leveldata.Level
	once         sync.Once
}

// NewMenuScene creates a new menu scene over the given level table
func NewMenuScene(sc SceneChanger, worlds [][]*leveldata.Level) *MenuScene {
	return &MenuScene{sceneChanger: sc, worlds: worlds}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(ms.sceneChanger, ms.worlds)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createPlatformerScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
