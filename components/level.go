package components

import (
	"github.com/koopaeng/koopa-engine/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData holds the level table and the grid currently being played.
// Current is read-only during simulation; it is swapped wholesale on level
// transition.
type LevelData struct {
	Worlds  [][]*leveldata.Level
	Current *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
