package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems"
	"github.com/koopaeng/koopa-engine/systems/factory"
)

// GameOverScene displays the end screen for both outcomes
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	worlds       [][]*leveldata.Level
	result       components.SessionData
	once         sync.Once
}

// NewGameOverScene creates an end screen showing the finished run
func NewGameOverScene(sc SceneChanger, worlds [][]*leveldata.Level, result components.SessionData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, worlds: worlds, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger, gs.worlds)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateQuit(gs.sceneChanger, createMenuScene))
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateSessionSnapshot(gs.ecs, gs.result)
}
