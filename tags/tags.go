package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Koopa  = donburi.NewTag().SetName("Koopa")
	Coin   = donburi.NewTag().SetName("Coin")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvKoopa  = "koopa"
	ResolvCoin   = "coin"
)
