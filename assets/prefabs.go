package assets

import "textrogue/internal/generate"

// Prefabs are the hand-authored room templates. Legend:
//
//	'T' do-not-carve marker   '-' corridor   '.' floor
//	'd' door stub             '+' door       '#' wall   ' ' rock
var Prefabs = []generate.Prefab{
	// winding loop
	{
		ConnX: 3, ConnY: 2,
		Rows: []string{
			"TTTTTTT",
			"T---T--",
			"T-T-T-T",
			"T-T-T-T",
			"--T---T",
			"TTTTTTT",
		},
	},
	// switchback
	{
		ConnX: 3, ConnY: 1,
		Rows: []string{
			"TTTTT-T",
			"T-----T",
			"T-TTTTT",
			"T-----T",
			"TTTTT-T",
		},
	},
	// ring with four stubs
	{
		ConnX: 2, ConnY: 1,
		Rows: []string{
			"TTdTT",
			"T---T",
			"d-T-d",
			"T---T",
			"TTdTT",
		},
	},
	// twin chambers split by a passage
	{
		ConnX: 2, ConnY: 3,
		Rows: []string{
			"#d## ##d#",
			"#..#-+..#",
			"d..#-#..#",
			"#..#-#..#",
			"#..+-#..d",
			"#### #d##",
		},
	},
}
