package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridSolidsAndSpawns(t *testing.T) {
	lvl, err := ParseGrid([]string{
		"        ",
		"  C     ",
		"     K  ",
		"########",
	})
	require.NoError(t, err)

	assert.Equal(t, 8, lvl.Cols)
	assert.Equal(t, 4, lvl.Rows)
	assert.Len(t, lvl.Solids, 8)
	assert.Equal(t, float64(8*TileSize), lvl.PixelWidth())
	assert.Equal(t, float64(4*TileSize), lvl.PixelHeight())

	require.Len(t, lvl.KoopaSpawns, 1)
	assert.Equal(t, float64(5*TileSize), lvl.KoopaSpawns[0].X)
	assert.Equal(t, float64(2*TileSize), lvl.KoopaSpawns[0].Y)

	// Coins are centered inside their cell.
	require.Len(t, lvl.CoinSpawns, 1)
	assert.Equal(t, float64(2*TileSize+TileSize/2-10), lvl.CoinSpawns[0].X)
}

func TestParseGridSolidPositions(t *testing.T) {
	lvl, err := ParseGrid([]string{
		"#  ",
		"  #",
	})
	require.NoError(t, err)
	require.Len(t, lvl.Solids, 2)

	assert.Equal(t, SolidRect{X: 0, Y: 0, W: TileSize, H: TileSize}, lvl.Solids[0])
	assert.Equal(t, SolidRect{X: 2 * TileSize, Y: TileSize, W: TileSize, H: TileSize}, lvl.Solids[1])
}

func TestParseGridRejectsEmpty(t *testing.T) {
	_, err := ParseGrid(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLevel)

	_, err = ParseGrid([]string{})
	assert.ErrorIs(t, err, ErrMalformedLevel)
}

func TestParseGridRejectsRaggedRows(t *testing.T) {
	_, err := ParseGrid([]string{
		"####",
		"##",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLevel)
}

func TestBuiltinWorldsParse(t *testing.T) {
	require.Len(t, Worlds, 3)
	for w, world := range Worlds {
		require.Len(t, world, 3, "world %d", w+1)
		for l, lvl := range world {
			assert.NotEmpty(t, lvl.Solids, "world %d level %d has no solids", w+1, l+1)
			assert.Greater(t, lvl.Cols, 0)
			assert.Greater(t, lvl.Rows, 0)
		}
	}
}

func TestClampIndices(t *testing.T) {
	worlds := Worlds

	w, l := ClampIndices(worlds, 0, 0)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, l)

	w, l = ClampIndices(worlds, -3, -1)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, l)

	w, l = ClampIndices(worlds, 99, 99)
	assert.Equal(t, len(worlds)-1, w)
	assert.Equal(t, len(worlds[w])-1, l)
}
