package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/components"
	"github.com/koopaeng/koopa-engine/tags"
)

const tweenStep = 1.0 / 60.0

// UpdateCoins advances each coin's bob tween. Presentation only: the
// offset never touches the collision object, a bobbing coin collects at
// its spawn box.
func UpdateCoins(ecs *ecs.ECS) {
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		coin := components.Coin.Get(e)

		offset, _, done := tw.Update(tweenStep)
		coin.BobOffset = float64(offset)
		if done {
			tw.Reset()
		}
	})
}
