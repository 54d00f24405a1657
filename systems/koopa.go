package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

// UpdateKoopas drives every enemy's three-state machine. A wall hit
// recorded by the previous integration flips the heading in any state, so
// sliding shells bounce between walls indefinitely. The ledge probe only
// runs while grounded and patrolling; shells slide straight off edges.
func UpdateKoopas(ecs *ecs.ECS) {
	tags.Koopa.Each(ecs.World, func(e *donburi.Entry) {
		koopa := components.Koopa.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		if physics.HitWall {
			koopa.Direction = -koopa.Direction
		}

		switch koopa.State {
		case cfg.StatePatrol:
			if physics.OnGround != nil && atLedge(obj, koopa.Direction) {
				koopa.Direction = -koopa.Direction
			}
			physics.SpeedX = cfg.Koopa.PatrolSpeed * koopa.Direction

		case cfg.StateShellIdle:
			physics.SpeedX = 0
			koopa.ShellTimer--
			if koopa.ShellTimer <= 0 {
				koopa.State = cfg.StatePatrol
			}

		case cfg.StateShellSliding:
			physics.SpeedX = cfg.Koopa.ShellSpeed * koopa.Direction
			koopa.ShellTimer--
			if koopa.ShellTimer <= 0 {
				koopa.State = cfg.StatePatrol
			}
		}
	})
}

// atLedge reports whether the next patrol step has no ground directly
// under the feet. The probe is a thin strip, so a one-tile step down
// still reads as a ledge and the patroller turns instead of descending.
func atLedge(obj *resolv.Object, direction float64) bool {
	probe := cfg.Koopa.PatrolSpeed * direction
	return obj.Check(probe, cfg.Koopa.EdgeProbeDepth, tags.ResolvSolid) == nil
}

// StompKoopa transitions a koopa into an idle shell. The timer restarts on
// a repeat stomp.
func StompKoopa(ecs *ecs.ECS, e *donburi.Entry) {
	koopa := components.Koopa.Get(e)
	physics := components.Physics.Get(e)

	koopa.State = cfg.StateShellIdle
	koopa.ShellTimer = cfg.Koopa.ShellIdleFrames
	physics.SpeedX = 0

	PlaySFX(ecs, cfg.SoundStomp)
}

// KickKoopa sends a shell sliding away in the given direction with a small
// hop. Works from any state; kicking a slide re-arms its timer.
func KickKoopa(ecs *ecs.ECS, e *donburi.Entry, direction float64) {
	koopa := components.Koopa.Get(e)
	physics := components.Physics.Get(e)

	koopa.State = cfg.StateShellSliding
	koopa.ShellTimer = cfg.Koopa.ShellSlideFrames
	koopa.Direction = direction
	physics.SpeedX = cfg.Koopa.ShellSpeed * direction
	physics.SpeedY = cfg.Koopa.KickImpulseY

	PlaySFX(ecs, cfg.SoundKick)
}
