package game

import "strings"

const (
	rowLabels = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	colLabels = "0123456789abcdef"
)

// moveSeparators are stripped from player input before parsing
const moveSeparators = " ,.:;-_"

// Coord addresses one board cell by row and column, both zero-based
type Coord struct {
	Row int
	Col int
}

// Valid reports whether the coordinate lies on a dim-sized board
func (c Coord) Valid(dim int) bool {
	return c.Row >= 0 && c.Row < dim && c.Col >= 0 && c.Col < dim
}

// String renders the coordinate as a row letter followed by a column hex
// digit, e.g. "D2". Out-of-range components render as '?'
func (c Coord) String() string {
	row, col := byte('?'), byte('?')
	if c.Row >= 0 && c.Row < len(rowLabels) {
		row = rowLabels[c.Row]
	}
	if c.Col >= 0 && c.Col < len(colLabels) {
		col = colLabels[c.Col]
	}
	return string([]byte{row, col})
}

// Adjacent returns the four orthogonal neighbors in the fixed order
// up, left, down, right. The movement rules rely on this order: the first
// two are the attacker's forward directions, the last two the defender's
func (c Coord) Adjacent() [4]Coord {
	return [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row + 1, c.Col},
		{c.Row, c.Col + 1},
	}
}

// Ring returns all coordinates within dist of c in every direction,
// including c itself. Cells that fall off the board are not filtered here
func (c Coord) Ring(dist int) []Coord {
	out := make([]Coord, 0, (2*dist+1)*(2*dist+1))
	for row := c.Row - dist; row <= c.Row+dist; row++ {
		for col := c.Col - dist; col <= c.Col+dist; col++ {
			out = append(out, Coord{row, col})
		}
	}
	return out
}

// CoordPair is either a move (source to destination) or a rectangular
// area (top-left to bottom-right corner)
type CoordPair struct {
	Src Coord
	Dst Coord
}

func (cp CoordPair) String() string {
	return cp.Src.String() + " " + cp.Dst.String()
}

// Rectangle enumerates every cell of the area row-major, both corners
// included
func (cp CoordPair) Rectangle() []Coord {
	var cells []Coord
	for row := cp.Src.Row; row <= cp.Dst.Row; row++ {
		for col := cp.Src.Col; col <= cp.Dst.Col; col++ {
			cells = append(cells, Coord{row, col})
		}
	}
	return cells
}

// FromDim returns the full board area for a dim-sized board
func FromDim(dim int) CoordPair {
	return CoordPair{Coord{0, 0}, Coord{dim - 1, dim - 1}}
}

// ParseCoord reads a two-character cell label such as "D2". Row letters
// are accepted in either case. Anything malformed yields ok=false
func ParseCoord(s string) (Coord, bool) {
	s = stripSeparators(s)
	if len(s) != 2 {
		return Coord{}, false
	}
	return coordFromBytes(s[0], s[1])
}

// ParseCoordPair reads a four-character move such as "A3 B2"
func ParseCoordPair(s string) (CoordPair, bool) {
	s = stripSeparators(s)
	if len(s) != 4 {
		return CoordPair{}, false
	}
	src, ok := coordFromBytes(s[0], s[1])
	if !ok {
		return CoordPair{}, false
	}
	dst, ok := coordFromBytes(s[2], s[3])
	if !ok {
		return CoordPair{}, false
	}
	return CoordPair{src, dst}, true
}

func coordFromBytes(row, col byte) (Coord, bool) {
	r := strings.IndexByte(rowLabels, toUpper(row))
	c := strings.IndexByte(colLabels, toLower(col))
	if r < 0 || c < 0 {
		return Coord{}, false
	}
	return Coord{r, c}, true
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(moveSeparators, r) {
			return -1
		}
		return r
	}, s)
}
