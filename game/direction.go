package game

// Dir is a numeric-keypad direction code, 1..9. 5 denotes "stay", a
// non-moving action used only to end a capture chain.
type Dir int

const (
	DirDownLeft  Dir = 1
	DirDown      Dir = 2
	DirDownRight Dir = 3
	DirLeft      Dir = 4
	DirStay      Dir = 5
	DirRight     Dir = 6
	DirUpLeft    Dir = 7
	DirUp        Dir = 8
	DirUpRight   Dir = 9
)

// offset gives the (dRow, dCol) displacement for a direction, laid out
// as a numeric keypad with row increasing downward.
var offset = map[Dir][2]int{
	DirDownLeft:  {1, -1},
	DirDown:      {1, 0},
	DirDownRight: {1, 1},
	DirLeft:      {0, -1},
	DirStay:      {0, 0},
	DirRight:     {0, 1},
	DirUpLeft:    {-1, -1},
	DirUp:        {-1, 0},
	DirUpRight:   {-1, 1},
}

// diagonalDirs are only legal from strong intersections, (x+y) even.
var diagonalDirs = map[Dir]bool{
	DirDownLeft:  true,
	DirDownRight: true,
	DirUpLeft:    true,
	DirUpRight:   true,
}

var allDirs = []Dir{DirDownLeft, DirDown, DirDownRight, DirLeft, DirRight, DirUpLeft, DirUp, DirUpRight}
var orthogonalDirs = []Dir{DirDown, DirLeft, DirRight, DirUp}

func (d Dir) IsDiagonal() bool {
	return diagonalDirs[d]
}

func (d Dir) Delta() (dx, dy int) {
	off := offset[d]
	return off[0], off[1]
}

func (d Dir) String() string {
	switch d {
	case DirDownLeft:
		return "down-left"
	case DirDown:
		return "down"
	case DirDownRight:
		return "down-right"
	case DirLeft:
		return "left"
	case DirStay:
		return "stay"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUp:
		return "up"
	case DirUpRight:
		return "up-right"
	default:
		return "invalid"
	}
}

// candidateDirections returns the directions available from a square,
// per the strong/weak intersection rule, optionally including the
// chain-ending Stay action.
func candidateDirections(x, y int, inChain bool) []Dir {
	var dirs []Dir
	if isStrong(x, y) {
		dirs = append(dirs, allDirs...)
	} else {
		dirs = append(dirs, orthogonalDirs...)
	}
	if inChain {
		dirs = append(dirs, DirStay)
	}
	return dirs
}

func isStrong(x, y int) bool {
	return (x+y)%2 == 0
}
