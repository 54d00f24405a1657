package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/assets"
	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraOffset translates world coordinates into screen coordinates.
func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2,
		camera.Position.Y - float64(cfg.C.Height)/2
}

// DrawLevel paints the sky, the parallax backdrop and every solid tile.
// Registered first so everything else draws over it.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	offX, offY := cameraOffset(e)
	drawBackground(screen, offX)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	block := assets.BlockImage()
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)

		// Viewport culling
		if o.X+o.W < offX || o.X > offX+width || o.Y+o.H < offY || o.Y > offY+height {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(o.X-offX, o.Y-offY)
		screen.DrawImage(block, drawOp)
	})
}

// drawBackground layers the pseudo-3D backdrop: flat color bands in the
// lower half, then rows of hills that scroll at a fraction of the camera
// speed, nearest row fastest.
func drawBackground(screen *ebiten.Image, camX float64) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	for i := 0; i < cfg.Background.LayerCount; i++ {
		band := color.RGBA{
			R: uint8(50 + i*50),
			G: uint8(100 + i*30),
			B: uint8(200 - i*50),
			A: 255,
		}
		bandY := cfg.Background.BandBaseY + float64(i)*cfg.Background.BandStepY
		vector.DrawFilledRect(screen, 0, float32(bandY), float32(width), float32(height/2), band, true)
	}

	hill := assets.HillImage()
	for i := 0; i < cfg.Background.LayerCount; i++ {
		factor := cfg.Background.ParallaxBase + float64(i)*cfg.Background.ParallaxStep
		hillY := cfg.Background.HillBaseY + float64(i)*cfg.Background.HillStepY

		for x := parallaxOffset(camX, factor, cfg.Background.HillSpacing); x < width; x += cfg.Background.HillSpacing {
			drawOp.GeoM.Reset()
			drawOp.GeoM.Scale(2, 1)
			drawOp.GeoM.Translate(x, hillY)
			screen.DrawImage(hill, drawOp)
		}
	}
}

// parallaxOffset maps the camera position to the screen X of the first
// hill in a row, always within (-spacing, 0] so the pattern repeats
// seamlessly while scrolling.
func parallaxOffset(camX, factor, spacing float64) float64 {
	off := -math.Mod(camX*factor, spacing)
	if off > 0 {
		off -= spacing
	}
	return off
}

// DrawSprites renders coins, koopas and the player, in that order so the
// player is always on top. Sprite choice follows the state machines: a
// shelled koopa and a shelled player both draw the shell silhouette.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(e)

	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		coin := components.Coin.Get(entry)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(o.X-offX, o.Y+coin.BobOffset-offY)
		screen.DrawImage(assets.CoinImage(), drawOp)
	})

	tags.Koopa.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		koopa := components.Koopa.Get(entry)

		img := assets.KoopaImage()
		if koopa.State != cfg.StatePatrol {
			img = assets.ShellImage()
		}

		drawOp.GeoM.Reset()
		// Shell sprite is shorter; keep the feet planted.
		drawOp.GeoM.Translate(o.X-offX, o.Bottom()-float64(img.Bounds().Dy())-offY)
		screen.DrawImage(img, drawOp)
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	img := assets.PlayerImage()
	if player.Mode == cfg.ModeShell {
		img = assets.ShellImage()
	}

	drawOp.GeoM.Reset()
	if player.Direction.X < 0 {
		// Mirror around the sprite's vertical center line.
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	drawOp.GeoM.Translate(o.X-offX, o.Bottom()-float64(img.Bounds().Dy())-offY)
	screen.DrawImage(img, drawOp)
}
