package biome

import "fmt"

// Coord addresses one grid cell. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Adjacency selects which neighbours a claimed cell exposes to growth.
type Adjacency uint8

const (
	// Adjacency4 connects up, down, left and right.
	Adjacency4 Adjacency = iota
	// Adjacency8 also connects the four diagonals.
	Adjacency8
)

// Discovery order matters for reproducibility: orthogonal neighbours first
// (left, up, right, down), then diagonals.
var (
	orthogonalOffsets = [4]Coord{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	diagonalOffsets   = [4]Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func (a Adjacency) String() string {
	if a == Adjacency8 {
		return "diagonal"
	}
	return "orthogonal"
}

// ParseAdjacency accepts "orthogonal"/"4" and "diagonal"/"8".
func ParseAdjacency(s string) (Adjacency, error) {
	switch s {
	case "orthogonal", "4":
		return Adjacency4, nil
	case "diagonal", "8":
		return Adjacency8, nil
	}
	return Adjacency4, fmt.Errorf("unknown adjacency %q", s)
}

// neighbors appends the in-bounds neighbours of c to dst in discovery order.
func neighbors(dst []Coord, c Coord, w, h int, adj Adjacency) []Coord {
	for _, d := range orthogonalOffsets {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h {
			dst = append(dst, n)
		}
	}
	if adj != Adjacency8 {
		return dst
	}
	for _, d := range diagonalOffsets {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if n.X >= 0 && n.X < w && n.Y >= 0 && n.Y < h {
			dst = append(dst, n)
		}
	}
	return dst
}
