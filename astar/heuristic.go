package astar

import (
	"gridpath/grid"
)

// Heuristic estimates the remaining cost between two points.
type Heuristic func(from grid.Point, to grid.Point) float64

// Manhattan is |dx| + |dy|, admissible and consistent on a four-connected
// unit-cost grid.
func Manhattan(pt1 grid.Point, pt2 grid.Point) float64 {
	return float64(abs(pt1.X-pt2.X) + abs(pt1.Y-pt2.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
