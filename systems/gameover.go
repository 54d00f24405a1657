package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the end screen for both outcomes, with the final
// score underneath.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	face := basicfont.Face7x13

	title := cfg.GameOver.GameOverTitle
	score := 0
	if entry, ok := components.Session.First(e.World); ok {
		session := components.Session.Get(entry)
		score = session.Score
		if session.Phase == cfg.PhaseWon {
			title = cfg.GameOver.WinTitle
		}
	}

	text.Draw(screen, title, face, centerTextX(title, face, width), int(height/2)-20, cfg.Red)

	line := fmt.Sprintf("Score %d", score)
	text.Draw(screen, line, face, centerTextX(line, face, width), int(height/2)+10, cfg.White)

	hint := cfg.GameOver.RestartHint
	text.Draw(screen, hint, face, centerTextX(hint, face, width), int(height/2)+40, cfg.White)
}
