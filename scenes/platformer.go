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

// PlatformerScene runs one session from World 1-1 until the player wins
// or runs out of lives.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	worlds       [][]*leveldata.Level
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene over the given level table
func NewPlatformerScene(sc SceneChanger, worlds [][]*leveldata.Level) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, worlds: worlds}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// The session outlives the scene only as a snapshot for the end
	// screen.
	if entry, ok := components.Session.First(ps.ecs.World); ok {
		session := components.Session.Get(entry)
		if session.Phase != cfg.PhasePlaying {
			systems.RecordResult(session.Score, session.World, session.Level)
			ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.worlds, *session))
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger, ps.worlds)
	}

	// Audio system (runs first, drains the SFX queued last tick)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateQuit(ps.sceneChanger, createMenuScene))
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateKoopas)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCoins)
	ecs.AddSystem(systems.UpdateEncounters)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	factory.CreateSession(ps.ecs)
	factory.CreateCamera(ps.ecs)
	factory.CreateLevel(ps.ecs, ps.worlds)
	factory.LoadLevel(ps.ecs, 0, 0)
}
