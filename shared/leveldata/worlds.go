package leveldata

// Worlds is the compiled-in level table: Worlds[world][level]. Levels are
// authored as 80-column character grids; parse failures here are build-time
// data bugs, hence MustParseGrid.
var Worlds = [][]*Level{
	{ // World 1: Koopa Plains
		MustParseGrid([]string{ // 1-1
			"................................................................................",
			"................................................................................",
			"..................###..............................................K............",
			"..............................................###...............................",
			".............................###..................C.............................",
			"................................................................................",
			"........K.......................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 1-2
			"................................................................................",
			"...................................###..........................................",
			"................K.................#...#.........................................",
			"..................................#...#................C........................",
			"..................................#...#.........................................",
			"...................................###..................K.......................",
			"................................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 1-3
			"................................................................................",
			".................###............................................................",
			"........K.......#...#..............................###..........................",
			"................#...#.............................#...#........C................",
			"................#...#.............................#...#.........................",
			".................###..............................#...#........K................",
			"................................................................................",
			"################################################################################",
		}),
	},
	{ // World 2: Shell Mountains
		MustParseGrid([]string{ // 2-1
			"................................................................................",
			"..............................#.................................................",
			".............................#.#......................K.........................",
			"............................#...#....................###........................",
			"........C..................#...#...................#...#........................",
			"............................#...#...................#...#........K..............",
			".............................#.#....................#...#.......................",
			"..............................#......................###........................",
			"................................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 2-2
			"................................................................................",
			"................#...............................................................",
			"...............#.#........................................C.....................",
			"..............#...#..............................K..............................",
			".............#.....#............................................................",
			"............#.......#...........................###.............................",
			"...........#.........#.........................#...#........K...................",
			"..........#...........#........................#...#............................",
			".........#.............#.......................#...#............................",
			"........#...............#......................###..............................",
			"................................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 2-3
			"................................................................................",
			"................................................................................",
			"...............###..............................................K...............",
			"..............#...#....................................C........................",
			".............#.....#............................................................",
			"............#.......#..........................K................................",
			"...........#.........#..........................................................",
			"..........#...........#.........................................................",
			".........#.............#........................................................",
			"........#...............#.......................................................",
			".......#.................#......................................................",
			"......#...................#.....................................................",
			".....#.....................#....................................................",
			"....#.......................#...................................................",
			"...#.........................#..................................................",
			"................................................................................",
			"################################################################################",
		}),
	},
	{ // World 3: Koopa Castle
		MustParseGrid([]string{ // 3-1
			"................................................................................",
			"................................................................................",
			"................................................................................",
			".................K.........................................###..................",
			"..........................................................#...#........C........",
			"..........................................................#...#.................",
			"..........................................................#...#........K........",
			"...........................................................###..................",
			"................................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 3-2
			"................................................................................",
			"...............#................................................................",
			"..............#.#........................................K......................",
			".............#...#.....................................###......................",
			"............#.....#...................................#...#........C............",
			"...........#.......#..................................#...#.....................",
			"..........#.........#........................K........#...#.....................",
			".........#...........#...............................#...#......................",
			"........#.............#..............................###........................",
			"................................................................................",
			"################################################################################",
		}),
		MustParseGrid([]string{ // 3-3
			"................................................................................",
			"................................................................................",
			"..............###...............................................K...............",
			".............#...#.....................................C........................",
			"............#.....#.............................................................",
			"...........#.......#...................................###......................",
			"..........#.........#........................K.........#...#....................",
			".........#...........#................................#...#.....................",
			"........#.............#...............................#...#.....................",
			".......#...............#..............................###.......................",
			"................................................................................",
			"################################################################################",
		}),
	},
}

// ClampIndices maps any requested (world, level) pair onto a valid one in
// the given table. Out-of-range requests are recovered, never fatal.
func ClampIndices(worlds [][]*Level, world, level int) (int, int) {
	if len(worlds) == 0 {
		return 0, 0
	}
	if world < 0 {
		world = 0
	} else if world >= len(worlds) {
		world = len(worlds) - 1
	}
	if level < 0 {
		level = 0
	} else if level >= len(worlds[world]) {
		level = len(worlds[world]) - 1
	}
	return world, level
}
