// Package shell is the interactive front end: it reads a grid and two
// coordinates from a terminal, runs the search and prints the result.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"gridpath/astar"
	"gridpath/grid"
)

type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	au     aurora.Aurora
	finder *astar.Finder
	// Preset grid; when set the dimension and cell prompts are skipped.
	Grid *grid.Grid
}

func New(in io.Reader, out io.Writer, finder *astar.Finder, colors bool) *Shell {
	if finder == nil {
		finder = astar.New()
	}
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		au:     aurora.NewAurora(colors),
		finder: finder,
	}
}

// Run performs one full session. It returns the search result so callers can
// tell a found path from "No path found".
func (s *Shell) Run() (astar.Result, error) {
	g := s.Grid
	if g == nil {
		var err error
		if g, err = s.readGrid(); err != nil {
			return astar.Result{}, err
		}
	}
	s.printGrid(g, nil)

	start, err := s.readPoint(g, "start")
	if err != nil {
		return astar.Result{}, err
	}
	end, err := s.readPoint(g, "end")
	if err != nil {
		return astar.Result{}, err
	}

	result, err := s.finder.FindPath(g, start, end)
	if err != nil {
		return result, err
	}
	if !result.Found {
		fmt.Fprintln(s.out, "No path found")
		return result, nil
	}
	s.printGrid(g, result.Path)
	fmt.Fprintln(s.out, result.Path.String())
	return result, nil
}

func (s *Shell) readGrid() (*grid.Grid, error) {
	colNum, err := s.readPositive("Input number of columns")
	if err != nil {
		return nil, err
	}
	rowNum, err := s.readPositive("Input number of rows")
	if err != nil {
		return nil, err
	}

	rows := make([][]bool, rowNum)
	for i := 0; i < rowNum; i++ {
		rows[i] = make([]bool, colNum)
		for j := 0; j < colNum; j++ {
			prompt := fmt.Sprintf("Input value for co-ord %d,%d - 0 for passable or 1 for obstacle", j, i)
			passableInt, err := s.readInt(prompt)
			if err != nil {
				return nil, err
			}
			rows[i][j] = passableInt == grid.ROAD
		}
	}
	return grid.FromRows(rows)
}

func (s *Shell) readPoint(g *grid.Grid, label string) (grid.Point, error) {
	for {
		x, err := s.readInt("Enter x co-ord for " + label)
		if err != nil {
			return grid.Point{}, err
		}
		y, err := s.readInt("Enter y co-ord for " + label)
		if err != nil {
			return grid.Point{}, err
		}

		pt := grid.Point{X: x, Y: y}
		switch {
		case !g.Contains(pt):
			fmt.Fprintln(s.out, "That's out of bounds, enter new co-ords")
		case !g.Walkable(pt):
			fmt.Fprintln(s.out, "Tile is unwalkable, enter new co-ords")
		default:
			return pt, nil
		}
	}
}

func (s *Shell) readPositive(prompt string) (int, error) {
	for {
		n, err := s.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintln(s.out, "Must be greater than zero")
	}
}

// readInt prompts until a line parses as an integer.
func (s *Shell) readInt(prompt string) (int, error) {
	for {
		fmt.Fprintln(s.out, prompt)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, errors.Wrap(err, "read input")
			}
			return 0, io.ErrUnexpectedEOF
		}
		n, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, "Please enter a whole number")
	}
}

// printGrid draws walkable cells as ',' and blocked cells as a red '!'. Cells
// on path are drawn as a green '*'.
func (s *Shell) printGrid(g *grid.Grid, path astar.Path) {
	onPath := make(map[grid.Point]bool, len(path))
	for _, pt := range path {
		onPath[pt] = true
	}

	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			pt := grid.Point{X: col, Y: row}
			switch {
			case onPath[pt]:
				sb.WriteString(fmt.Sprint(s.au.Green("*")))
			case g.Walkable(pt):
				sb.WriteByte(',')
			default:
				sb.WriteString(fmt.Sprint(s.au.Red("!")))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(s.out, sb.String())
}
