package astar

import (
	"strings"

	"gridpath/grid"
)

// Path is an ordered list of points from start to goal, both inclusive.
type Path []grid.Point

// Steps is the number of edges on the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Valid reports whether every point is walkable on g and every consecutive
// pair is one unit apart along exactly one axis.
func (p Path) Valid(g *grid.Grid) bool {
	for i, pt := range p {
		if !g.Walkable(pt) {
			return false
		}
		if i > 0 && Manhattan(p[i-1], pt) != 1 {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var sb strings.Builder
	for _, pt := range p {
		sb.WriteString(pt.String())
	}
	return sb.String()
}

func reconstructPath(nodes arena, goal grid.Point) Path {
	path := Path{}
	current := nodes[goal]
	for current != nil {
		path = append(path, current.position)
		if !current.hasParent {
			break
		}
		current = nodes[current.predecessor]
	}

	//reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
