package components

import (
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds the player's mode state machine. The mode is the single
// source of truth; rendering derives the sprite and silhouette from it.
type PlayerData struct {
	Direction Vector

	Mode         cfg.StateID // ModeNormal or ModeShell
	ShellTimer   int         // Ticks remaining in shell mode
	InvulnFrames int         // Post-hit grace period; 0 by default

	// Level start position, also the respawn point after a hit.
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
