package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	"github.com/koopaeng/koopa-engine/tags"
)

// UpdatePhysics integrates every kinematic body for this tick: gravity,
// then the horizontal sweep, then the vertical sweep. The two axes are
// resolved independently against the solid lattice. The player integrates
// first, then each koopa, so a tick's outcome never depends on entity
// creation order.
func UpdatePhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		stepBody(e)
	})
	tags.Koopa.Each(ecs.World, func(e *donburi.Entry) {
		stepBody(e)
	})
}

func stepBody(e *donburi.Entry) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	applyGravity(physics)
	resolveHorizontal(physics, obj)
	resolveVertical(physics, obj)
}

func applyGravity(physics *components.PhysicsData) {
	physics.SpeedY += physics.Gravity
	if physics.SpeedY > physics.MaxFallSpeed {
		physics.SpeedY = physics.MaxFallSpeed
	}
}

// resolveHorizontal moves the body by SpeedX, clamping against the first
// overlapping solid. Any horizontal contact is a full stop; HitWall stays
// set until the next sweep so controllers can react to it.
func resolveHorizontal(physics *components.PhysicsData, obj *resolv.Object) {
	physics.HitWall = false

	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
			physics.HitWall = true
		}
	}

	obj.X += dx
	obj.Update()
}

// resolveVertical moves the body by SpeedY. The check distance extends one
// pixel below the feet when moving down so a resting body keeps reporting
// its ground. Falling bodies snap onto tile tops; rising bodies snap under
// tile bottoms.
func resolveVertical(physics *components.PhysicsData, obj *resolv.Object) {
	physics.OnGround = nil

	dy := physics.SpeedY
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := obj.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			obj.Y += check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
			if dy >= 0 {
				physics.OnGround = solids[0]
			}
			obj.Update()
			return
		}
	}

	obj.Y += dy
	obj.Update()
}
