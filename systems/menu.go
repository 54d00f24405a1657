package systems

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	cfg "github.com/koopaeng/koopa-engine/config"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			sceneChanger.ChangeScene(createPlatformerScene())
		}

		if GetAction(input, cfg.ActionQuit).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	face := basicfont.Face7x13

	title := cfg.Menu.Title
	text.Draw(screen, title, face, centerTextX(title, face, width), int(height/2)-20, cfg.Gold)

	hint := cfg.Menu.StartHint
	text.Draw(screen, hint, face, centerTextX(hint, face, width), int(height/2)+20, cfg.White)

	if high := HighScore(); high > 0 {
		line := "Best " + strconv.Itoa(high)
		text.Draw(screen, line, face, centerTextX(line, face, width), int(height/2)+60, cfg.White)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
