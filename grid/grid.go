package grid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Cell values of the flat collide array. Anything other than ROAD blocks.
const (
	ROAD    = 0
	BARRIER = 1
)

var (
	ErrOutOfBounds = errors.New("point out of bounds")
	ErrDimensions  = errors.New("grid dimensions must be positive")
	ErrRagged      = errors.New("grid rows differ in length")
	ErrBadCell     = errors.New("unrecognized cell value")
)

// Point is a (column, row) pair.
type Point struct {
	X int
	Y int
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d,%d)", pt.X, pt.Y)
}

type Cell struct {
	Position Point
	Walkable bool
}

// Grid is a rectangular table of cells. It has no mutators, so one Grid can be
// searched from several goroutines at once.
type Grid struct {
	width  int
	height int
	cells  []Cell // row-major
}

func newGrid(width int, height int, walkable func(x, y int) bool) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = Cell{
				Position: Point{X: x, Y: y},
				Walkable: walkable(x, y),
			}
		}
	}
	return g
}

// FromArray builds a grid from a row-major array of ROAD/BARRIER values.
func FromArray(array []int, width int, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d", width, height)
	}
	if len(array) != width*height {
		return nil, errors.Wrapf(ErrRagged, "got %d values for %dx%d", len(array), width, height)
	}
	return newGrid(width, height, func(x, y int) bool {
		return array[y*width+x] == ROAD
	}), nil
}

// FromRows builds a grid from rows of walkability flags, rows[y][x].
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrDimensions
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrRagged, "row %d has %d cells, want %d", y, len(row), width)
		}
	}
	return newGrid(width, len(rows), func(x, y int) bool {
		return rows[y][x]
	}), nil
}

// Parse reads one line per row. '.', ',', '0', 'S' and 'E' are walkable;
// '#', '!' and '1' are blocked. Blank lines are skipped.
func Parse(text string) (*Grid, error) {
	var rows [][]bool
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, r := range line {
			switch r {
			case '.', ',', '0', 'S', 'E':
				row = append(row, true)
			case '#', '!', '1':
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrBadCell, "%q at row %d col %d", r, len(rows), col)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Contains(pt Point) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < g.width && pt.Y < g.height
}

// Cell returns the cell at pt, or ErrOutOfBounds.
func (g *Grid) Cell(pt Point) (Cell, error) {
	if !g.Contains(pt) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "%v on %dx%d grid", pt, g.width, g.height)
	}
	return g.cells[pt.Y*g.width+pt.X], nil
}

// Walkable reports false for points outside the grid.
func (g *Grid) Walkable(pt Point) bool {
	return g.Contains(pt) && g.cells[pt.Y*g.width+pt.X].Walkable
}

// Neighbors returns the in-bounds four-connected neighbors of pt in the order
// row+1, row-1, col-1, col+1. Walkability is not filtered here.
func (g *Grid) Neighbors(pt Point) []Point {
	result := make([]Point, 0, 4)
	if pt.Y+1 < g.height {
		result = append(result, Point{pt.X, pt.Y + 1})
	}
	if pt.Y-1 >= 0 {
		result = append(result, Point{pt.X, pt.Y - 1})
	}
	if pt.X-1 >= 0 {
		result = append(result, Point{pt.X - 1, pt.Y})
	}
	if pt.X+1 < g.width {
		result = append(result, Point{pt.X + 1, pt.Y})
	}
	return result
}

// String renders walkable cells as ',' and blocked cells as '!', one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x].Walkable {
				sb.WriteByte(',')
			} else {
				sb.WriteByte('!')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
