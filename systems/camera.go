package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	"github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

// UpdateCamera follows the player with smoothing, clamped so the view
// never leaves the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Current == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := levelData.Current.PixelWidth()
	levelHeight := levelData.Current.PixelHeight()

	// Camera bounds: ensure the level always fills the screen
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2
	if maxCameraX < minCameraX {
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
