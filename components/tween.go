package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives small looping presentation motions (coin bob).
var Tween = donburi.NewComponentType[gween.Sequence]()
