package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton resolv collision space for the current level.
var Space = donburi.NewComponentType[resolv.Space]()
