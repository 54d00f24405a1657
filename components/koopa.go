package components

import (
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/yohamta/donburi"
)

// KoopaData drives the three-state enemy machine: patrolling, shelled and
// idle after a stomp, or sliding after a kick.
type KoopaData struct {
	Direction  float64 // +1 right, -1 left
	State      cfg.StateID
	ShellTimer int // Ticks left in ShellIdle / ShellSliding
}

var Koopa = donburi.NewComponentType[KoopaData]()
