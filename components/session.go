package components

import (
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/yohamta/donburi"
)

// SessionData is the per-run state: score, lives and progression. One
// session entity exists at a time; there is no package-level world/level
// state anywhere.
type SessionData struct {
	Score int
	Lives int

	World int
	Level int

	Phase cfg.Phase

	// PendingAdvance is set by the encounter resolver when the player
	// crosses the completion margin; the session system performs the
	// transition after the tick's encounters are done.
	PendingAdvance bool
}

var Session = donburi.NewComponentType[SessionData]()
