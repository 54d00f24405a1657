package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/archetypes"
	"github.com/koopaeng/koopa-engine/components"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
