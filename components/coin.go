package components

import "github.com/yohamta/donburi"

// CoinData carries presentation-only state; the coin's existence is its
// collectable state, the entity is removed on pickup.
type CoinData struct {
	BobOffset float64 // Vertical draw offset driven by the bob tween
}

var Coin = donburi.NewComponentType[CoinData]()
