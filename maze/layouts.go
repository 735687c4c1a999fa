package maze

// Builtin holds the bundled layouts, one per level. Every corridor cell
// except the start holds a collectible.
var Builtin = []string{
	`
###################
#........#........#
#.##.###.#.###.##.#
#o##.###.#.###.##o#
#.................#
#.##.#.#####.#.##.#
#....#...#...#....#
####.###.#.###.####
#o.......P.......o#
###################
`,
	`
###########
#o.......o#
#.##.#.##.#
#....P....#
#.##.#.##.#
#o.......o#
###########
`,
}
