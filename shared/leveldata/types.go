// Package leveldata provides level grid parsing shared between the game and
// its tests. It has no dependencies on ebitengine, donburi, or resolv, just
// pure data.
package leveldata

import "errors"

// TileSize is the side length in pixels of one grid cell.
const TileSize = 32

// ErrMalformedLevel is returned when a level grid is empty or its rows have
// unequal lengths. A level that fails to parse must never start a session.
var ErrMalformedLevel = errors.New("malformed level")

// SolidRect is one solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint marks where a coin or a koopa is placed on level load.
type SpawnPoint struct {
	X, Y float64
}

// Level holds everything parsed from one level grid. Immutable after
// construction, so systems read it without coordination.
type Level struct {
	Solids      []SolidRect
	CoinSpawns  []SpawnPoint
	KoopaSpawns []SpawnPoint

	// Grid dimensions in cells.
	Cols, Rows int
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() float64 { return float64(l.Cols * TileSize) }

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() float64 { return float64(l.Rows * TileSize) }
