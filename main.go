package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/scenes"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(worlds [][]*leveldata.Level) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, worlds)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadWorlds returns either the built-in level table or, with -levels, one
// world loaded from a directory of Tiled .tmx maps.
func loadWorlds(levelsDir string) [][]*leveldata.Level {
	if levelsDir == "" {
		return leveldata.Worlds
	}

	world, err := leveldata.LoadTMXWorld(os.DirFS(levelsDir), ".")
	if err != nil {
		log.Fatalf("Failed to load levels from %s: %v", levelsDir, err)
	}
	return [][]*leveldata.Level{world}
}

func main() {
	levelsDir := flag.String("levels", "", "directory of Tiled .tmx maps to play instead of the built-in levels")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)

	// Initialize persistence for the high score table
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(loadWorlds(*levelsDir))); err != nil {
		log.Fatal(err)
	}
}
