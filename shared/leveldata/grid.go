package leveldata

import "fmt"

// Grid cell vocabulary.
const (
	cellSolid = '#'
	cellCoin  = 'C'
	cellKoopa = 'K'
)

// ParseGrid builds a Level from a rectangular character grid. '#' becomes a
// solid tile, 'C' a coin spawn, 'K' a koopa spawn; everything else is empty.
// Returns ErrMalformedLevel when the grid is empty or rows differ in length.
func ParseGrid(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLevel)
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrMalformedLevel)
	}

	lvl := &Level{
		Cols: cols,
		Rows: len(rows),
	}

	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLevel, y, len(row), cols)
		}
		for x, c := range row {
			px := float64(x * TileSize)
			py := float64(y * TileSize)
			switch c {
			case cellSolid:
				lvl.Solids = append(lvl.Solids, SolidRect{X: px, Y: py, W: TileSize, H: TileSize})
			case cellCoin:
				// Coins sit centered in their cell.
				lvl.CoinSpawns = append(lvl.CoinSpawns, SpawnPoint{
					X: px + TileSize/2 - 10,
					Y: py + TileSize/2 - 10,
				})
			case cellKoopa:
				lvl.KoopaSpawns = append(lvl.KoopaSpawns, SpawnPoint{X: px, Y: py})
			}
		}
	}

	return lvl, nil
}

// MustParseGrid is ParseGrid for compiled-in level tables, where a parse
// failure is a programming error.
func MustParseGrid(rows []string) *Level {
	lvl, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return lvl
}
