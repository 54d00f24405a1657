package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX parses a Tiled map into a Level. Any non-empty tile on the "solid"
// layer becomes a solid rect; objects in the "Coins" and "Koopas" object
// groups become spawn points. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Cols: levelMap.Width,
		Rows: levelMap.Height,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "solid" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				lvl.Solids = append(lvl.Solids, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Coins":
			for _, o := range og.Objects {
				lvl.CoinSpawns = append(lvl.CoinSpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		case "Koopas":
			for _, o := range og.Objects {
				lvl.KoopaSpawns = append(lvl.KoopaSpawns, SpawnPoint{X: o.X, Y: o.Y})
			}
		}
	}

	return lvl, nil
}

// LoadTMXWorld discovers all .tmx files in dir within fsys and returns them
// as a single world, sorted by file name. Useful for custom level packs
// loaded at startup in place of the compiled-in Worlds table.
func LoadTMXWorld(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := "*.tmx"
	if dir != "" && dir != "." {
		pattern = dir + "/*.tmx"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		lvl, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", strings.TrimSuffix(filepath.Base(path), ".tmx"), err)
		}
		levels = append(levels, lvl)
	}

	return levels, nil
}
