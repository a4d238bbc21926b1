package astar

import (
	"gridpath/grid"
)

type NodeStatus int

const (
	Untested NodeStatus = iota
	Open
	Closed
)

func (s NodeStatus) String() string {
	switch s {
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "Untested"
	}
}

// node is the search state of one discovered cell. Predecessors are positions
// looked up in the arena of the running search, never pointers.
type node struct {
	position    grid.Point
	g           float64
	h           float64
	predecessor grid.Point
	hasParent   bool
	status      NodeStatus
	seq         int // discovery order
	index       int // heap slot
}

func (n *node) f() float64 {
	return n.g + n.h
}

// arena owns every node created during one search.
type arena map[grid.Point]*node

func (a arena) add(pt grid.Point, g float64, h float64, parent *node, seq int) *node {
	n := &node{
		position: pt,
		g:        g,
		h:        h,
		status:   Open,
		seq:      seq,
	}
	if parent != nil {
		n.predecessor = parent.position
		n.hasParent = true
	}
	a[pt] = n
	return n
}

func (a arena) status(pt grid.Point) NodeStatus {
	if n, ok := a[pt]; ok {
		return n.status
	}
	return Untested
}
