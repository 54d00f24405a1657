package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

// UpdatePlayer turns input into velocity intents and runs the two-mode
// shell state machine. Integration against the lattice happens afterwards
// in UpdatePhysics, so the controller never moves the collision object
// directly.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}

	// Horizontal intent sets speed directly; there is no inertia. Both
	// directions held cancel out.
	physics.SpeedX = 0
	if input.Current[cfg.ActionMoveLeft] {
		physics.SpeedX -= cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionLeft
	}
	if input.Current[cfg.ActionMoveRight] {
		physics.SpeedX += cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionRight
	}

	// Jump is honored only when grounded. Holding the key re-jumps on
	// landing, matching the buffered feel of the arcade original.
	if input.Current[cfg.ActionJump] && physics.OnGround != nil {
		physics.SpeedY = cfg.Player.JumpStrength
		PlaySFX(ecs, cfg.SoundJump)
	}

	switch player.Mode {
	case cfg.ModeNormal:
		if GetAction(input, cfg.ActionDash).JustPressed {
			EnterShellMode(ecs, player, obj)
		}

	case cfg.ModeShell:
		physics.SpeedX *= cfg.Player.ShellSpeedMultiplier

		player.ShellTimer--
		if player.ShellTimer <= 0 {
			ExitShellMode(player, obj)
		}
	}
}

// EnterShellMode shrinks the collision box, keeping the feet planted. The
// silhouette change is part of the simulation, not the renderer: a shelled
// player fits through one-tile gaps.
func EnterShellMode(ecs *ecs.ECS, player *components.PlayerData, obj *resolv.Object) {
	player.Mode = cfg.ModeShell
	player.ShellTimer = cfg.Player.ShellFrames

	obj.Y += cfg.Player.Height - cfg.Player.ShellHeight
	obj.H = cfg.Player.ShellHeight
	obj.Update()

	PlaySFX(ecs, cfg.SoundPowerup)
}

// ExitShellMode restores the full-height box. The expansion may overlap a
// ceiling tile for a tick; the next vertical sweep pushes the body back
// out.
func ExitShellMode(player *components.PlayerData, obj *resolv.Object) {
	player.Mode = cfg.ModeNormal
	player.ShellTimer = 0

	obj.Y -= cfg.Player.Height - cfg.Player.ShellHeight
	obj.H = cfg.Player.Height
	obj.Update()
}
