package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/archetypes"
	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/koopaeng/koopa-engine/tags"
)

// CreateLevel spawns the level entity holding the world table. No grid is
// loaded yet; call LoadLevel afterwards.
func CreateLevel(ecs *ecs.ECS, worlds [][]*leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Worlds: worlds,
	})
	return level
}

// LoadLevel swaps the current grid for worlds[world][level], clamped to
// what exists. Everything tied to the old grid (walls, coins, koopas, the
// collision space) is torn down and rebuilt; the player entity survives
// and is repositioned at the spawn point with its run state intact.
func LoadLevel(ecs *ecs.ECS, world, level int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	world, level = leveldata.ClampIndices(levelData.Worlds, world, level)
	grid := levelData.Worlds[world][level]

	if sessionEntry, ok := components.Session.First(ecs.World); ok {
		session := components.Session.Get(sessionEntry)
		session.World = world
		session.Level = level
		session.PendingAdvance = false
	}

	clearLevelEntities(ecs)

	CreateSpace(ecs,
		int(grid.PixelWidth()), int(grid.PixelHeight()),
		cfg.Level.SpaceCellSize, cfg.Level.SpaceCellSize,
	)

	for _, solid := range grid.Solids {
		CreateWall(ecs, solid.X, solid.Y, solid.W, solid.H)
	}
	for _, spawn := range grid.CoinSpawns {
		CreateCoin(ecs, spawn.X, spawn.Y)
	}
	for _, spawn := range grid.KoopaSpawns {
		CreateKoopa(ecs, spawn.X, spawn.Y)
	}

	placePlayer(ecs)

	levelData.Current = grid

	// Snap the camera so a transition never pans across the new level.
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = cfg.Player.SpawnX
		camera.Position.Y = cfg.Player.SpawnY
	}
}

// clearLevelEntities removes every entity owned by the current grid, the
// collision space included. The old space is dropped wholesale rather than
// emptied object by object.
func clearLevelEntities(ecs *ecs.ECS) {
	var doomed []*donburi.Entry

	collect := func(e *donburi.Entry) { doomed = append(doomed, e) }
	tags.Wall.Each(ecs.World, collect)
	tags.Coin.Each(ecs.World, collect)
	tags.Koopa.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)

	for _, e := range doomed {
		ecs.World.Remove(e.Entity())
	}
}

// placePlayer moves the existing player to the spawn point, or creates one
// on the first load. Shell mode does not carry across levels.
func placePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		CreatePlayer(ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	player.Mode = cfg.ModeNormal
	player.ShellTimer = 0
	player.InvulnFrames = 0
	player.SpawnX = cfg.Player.SpawnX
	player.SpawnY = cfg.Player.SpawnY
	player.Direction = components.Vector{X: cfg.DirectionRight}

	obj.X = cfg.Player.SpawnX
	obj.Y = cfg.Player.SpawnY
	obj.H = cfg.Player.Height

	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	physics.HitWall = false

	// The old space is gone; register the surviving object in the new one.
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	obj.Update()
}
