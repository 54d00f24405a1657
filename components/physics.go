package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the shared kinematic state for anything that falls and
// collides with the tile lattice. Gravity and resolution run in
// systems.UpdatePhysics; controllers only write speeds.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64

	// OnGround holds the solid the body landed on this tick, nil when
	// airborne. Recomputed every vertical sweep.
	OnGround *resolv.Object

	// HitWall records a horizontal full stop during the last sweep.
	HitWall bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
