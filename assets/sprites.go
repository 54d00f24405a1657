package assets

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/koopaeng/koopa-engine/config"
)

// Sprite images are generated once on first use. All of them are simple
// koopa silhouettes: shell body, head, optional eyes.
var (
	spriteOnce sync.Once

	playerImg *ebiten.Image
	koopaImg  *ebiten.Image
	shellImg  *ebiten.Image
	blockImg  *ebiten.Image
	coinImg   *ebiten.Image
	hillImg   *ebiten.Image
)

func generateSprites() {
	playerImg = ebiten.NewImage(32, 32)
	drawKoopa(playerImg, cfg.Red, cfg.DarkRed, 32, true)

	koopaImg = ebiten.NewImage(32, 32)
	drawKoopa(koopaImg, cfg.Green, cfg.DarkGreen, 32, true)

	shellImg = ebiten.NewImage(24, 24)
	drawKoopa(shellImg, cfg.Gold, cfg.ShellGold, 24, false)

	blockImg = ebiten.NewImage(32, 32)
	drawKoopa(blockImg, cfg.Brown, cfg.DarkBrown, 32, false)

	coinImg = ebiten.NewImage(20, 20)
	drawKoopa(coinImg, cfg.Gold, cfg.ShellGold, 20, true)

	// Background hill, stretched into an ellipse at draw time.
	hillImg = ebiten.NewImage(50, 50)
	vector.DrawFilledCircle(hillImg, 25, 25, 25, cfg.HillGreen, true)
}

// drawKoopa paints a koopa shape: shell across the middle, head above,
// optional eyes with pupils.
func drawKoopa(dst *ebiten.Image, body, shell color.RGBA, size float32, eyes bool) {
	vector.DrawFilledRect(dst, 0, size/4, size, size/2, shell, true)
	vector.DrawFilledCircle(dst, size/2, size/4, size/4, body, true)
	if eyes {
		vector.DrawFilledCircle(dst, size/2-5, size/4-5, 3, cfg.White, true)
		vector.DrawFilledCircle(dst, size/2+5, size/4-5, 3, cfg.White, true)
		vector.DrawFilledCircle(dst, size/2-5, size/4-5, 1, color.RGBA{A: 255}, true)
		vector.DrawFilledCircle(dst, size/2+5, size/4-5, 1, color.RGBA{A: 255}, true)
	}
}

func PlayerImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return playerImg
}

func KoopaImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return koopaImg
}

func ShellImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return shellImg
}

func BlockImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return blockImg
}

func CoinImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return coinImg
}

func HillImage() *ebiten.Image {
	spriteOnce.Do(generateSprites)
	return hillImg
}
