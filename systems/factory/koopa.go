package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/archetypes"
	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/koopaeng/koopa-engine/tags"
)

func CreateKoopa(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	koopa := archetypes.Koopa.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Koopa.Width, cfg.Koopa.Height, tags.ResolvKoopa)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Koopa.Width, cfg.Koopa.Height))
	obj.Data = koopa

	components.Object.SetValue(koopa, components.ObjectData{Object: obj})
	components.Koopa.SetValue(koopa, components.KoopaData{
		Direction: cfg.DirectionLeft,
		State:     cfg.StatePatrol,
	})
	components.Physics.SetValue(koopa, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return koopa
}
