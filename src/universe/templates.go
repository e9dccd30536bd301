package universe

//Builtin seeding templates: the classic still life, oscillator and ship
//fixtures plus the Gosper glider gun. Coordinates are [x,y] offsets from
//the template anchor (top-left of the pattern's bounding box).
var BuiltinTemplates = []Template{
	{
		Name:        "block",
		Descr:       "2x2 still life",
		Coordinates: [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	{
		Name:        "blinker",
		Descr:       "period-2 oscillator",
		Coordinates: [][]int{{0, 0}, {1, 0}, {2, 0}},
	},
	{
		Name:        "glider",
		Descr:       "diagonal ship, moves (1,1) every 4 steps",
		Coordinates: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	{
		Name:  "gun",
		Descr: "Gosper glider gun",
		Coordinates: [][]int{
			{0, 4}, {1, 4}, {0, 5}, {1, 5},
			{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8},
			{14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
			{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
			{24, 0}, {24, 1}, {24, 5}, {24, 6},
			{34, 2}, {34, 3}, {35, 2}, {35, 3},
		},
	},
}
