package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
)

// DrawHUD renders score, lives and progression in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)

	face := basicfont.Face7x13
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineStep)
	step := int(cfg.HUD.LineStep)

	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score), face, x, y, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("LIVES %d", session.Lives), face, x, y+step, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("WORLD %d-%d", session.World+1, session.Level+1), face, x, y+2*step, cfg.HUD.TextColor)

	if high := HighScore(); high > 0 {
		text.Draw(screen, fmt.Sprintf("BEST %d", high), face, x, y+3*step, cfg.HUD.TextColor)
	}

	drawShellTimer(e, screen, face, x, y+4*step)
}

// drawShellTimer shows the remaining shell dash frames while active.
func drawShellTimer(e *ecs.ECS, screen *ebiten.Image, face font.Face, x, y int) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Mode != cfg.ModeShell {
		return
	}
	text.Draw(screen, fmt.Sprintf("SHELL %d", player.ShellTimer), face, x, y, cfg.Gold)
}
