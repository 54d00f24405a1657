package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionMenuSelect
	ActionQuit

	// Debug level select, mirroring the original's number-key bindings.
	ActionWorld1
	ActionWorld2
	ActionWorld3
	ActionWorld4
	ActionWorld5
	ActionLevel1
	ActionLevel2
	ActionLevel3

	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:   {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight:  {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionJump:       {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW}},
			ActionDash:       {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionMenuSelect: {Keys: []ebiten.Key{ebiten.KeyEnter}},
			ActionQuit:       {Keys: []ebiten.Key{ebiten.KeyEscape}},

			ActionWorld1: {Keys: []ebiten.Key{ebiten.Key1}},
			ActionWorld2: {Keys: []ebiten.Key{ebiten.Key2}},
			ActionWorld3: {Keys: []ebiten.Key{ebiten.Key3}},
			ActionWorld4: {Keys: []ebiten.Key{ebiten.Key4}},
			ActionWorld5: {Keys: []ebiten.Key{ebiten.Key5}},
			ActionLevel1: {Keys: []ebiten.Key{ebiten.Key7}},
			ActionLevel2: {Keys: []ebiten.Key{ebiten.Key8}},
			ActionLevel3: {Keys: []ebiten.Key{ebiten.Key9}},
		},
	}
}
