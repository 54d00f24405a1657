package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/archetypes"
	"github.com/koopaeng/koopa-engine/components"
	"github.com/koopaeng/koopa-engine/tags"
)

const coinSize = 20.0

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := resolv.NewObject(x, y, coinSize, coinSize, tags.ResolvCoin)
	obj.SetShape(resolv.NewRectangle(0, 0, coinSize, coinSize))
	obj.Data = coin

	components.Object.SetValue(coin, components.ObjectData{Object: obj})

	// Coins bob up and down using a *gween.Sequence of tweens; the coin
	// system restarts the sequence when it completes.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -6, 0.8, ease.InOutSine),
		gween.New(-6, 0, 0.8, ease.InOutSine),
	)
	components.Tween.Set(coin, tw)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return coin
}
