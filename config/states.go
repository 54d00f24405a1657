package config

// StateID identifies an entity state-machine state.
type StateID int

const (
	StateNone StateID = iota

	// Player modes
	ModeNormal
	ModeShell

	// Koopa states
	StatePatrol
	StateShellIdle
	StateShellSliding
)

// Phase is the lifecycle of one level session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseWon
)
