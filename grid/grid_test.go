package grid

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestFromArray(t *testing.T) {
	array := []int{
		ROAD, BARRIER, ROAD,
		ROAD, ROAD, 7,
	}
	g, err := FromArray(array, 3, 2)
	if err != nil {
		t.Fatalf("FromArray: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}

	want := map[Point]bool{
		{0, 0}: true, {1, 0}: false, {2, 0}: true,
		{0, 1}: true, {1, 1}: true, {2, 1}: false,
	}
	for pt, walkable := range want {
		cell, err := g.Cell(pt)
		if err != nil {
			t.Fatalf("Cell(%v): %v", pt, err)
		}
		if cell.Position != pt {
			t.Errorf("Cell(%v).Position = %v", pt, cell.Position)
		}
		if cell.Walkable != walkable {
			t.Errorf("Cell(%v).Walkable = %v, want %v", pt, cell.Walkable, walkable)
		}
	}

	// The grid keeps its own copy.
	array[0] = BARRIER
	if !g.Walkable(Point{0, 0}) {
		t.Error("grid changed after mutating the source array")
	}
}

func TestFromArrayErrors(t *testing.T) {
	tests := []struct {
		name   string
		array  []int
		width  int
		height int
		want   error
	}{
		{"zero width", nil, 0, 3, ErrDimensions},
		{"negative height", nil, 3, -1, ErrDimensions},
		{"short array", []int{0, 0, 0}, 2, 2, ErrRagged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArray(tt.array, tt.width, tt.height)
			if errors.Cause(err) != tt.want {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	if _, err := FromRows(nil); errors.Cause(err) != ErrDimensions {
		t.Errorf("empty rows: err = %v", err)
	}
	_, err := FromRows([][]bool{{true, true}, {true}})
	if errors.Cause(err) != ErrRagged {
		t.Errorf("ragged rows: err = %v", err)
	}

	rows := [][]bool{{true, false}, {false, true}}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	rows[0][1] = true
	if g.Walkable(Point{1, 0}) {
		t.Error("grid changed after mutating the source rows")
	}
}

func TestParse(t *testing.T) {
	g, err := Parse(`
S.#
,!0
1.E
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width(), g.Height())
	}
	if got, want := g.String(), ",,!\n,!,\n!,,\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := Parse("..x"); errors.Cause(err) != ErrBadCell {
		t.Errorf("bad cell: err = %v", err)
	}
}

func TestCellOutOfBounds(t *testing.T) {
	g, _ := Parse("...\n...")
	for _, pt := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if _, err := g.Cell(pt); errors.Cause(err) != ErrOutOfBounds {
			t.Errorf("Cell(%v): err = %v, want ErrOutOfBounds", pt, err)
		}
		if g.Walkable(pt) {
			t.Errorf("Walkable(%v) = true outside the grid", pt)
		}
	}
}

func TestNeighbors(t *testing.T) {
	// 4 columns, 2 rows: column bounds must come from the width and row
	// bounds from the height.
	g, _ := Parse("....\n....")
	tests := []struct {
		pt   Point
		want []Point
	}{
		{Point{0, 0}, []Point{{0, 1}, {1, 0}}},
		{Point{3, 0}, []Point{{3, 1}, {2, 0}}},
		{Point{2, 1}, []Point{{2, 0}, {1, 1}, {3, 1}}},
		{Point{3, 1}, []Point{{3, 0}, {2, 1}}},
	}
	for _, tt := range tests {
		if got := g.Neighbors(tt.pt); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Neighbors(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}
