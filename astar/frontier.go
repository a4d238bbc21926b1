package astar

// frontier is a container/heap of open nodes ordered by f, then g, then
// discovery order. With unit costs and a consistent heuristic, popping the
// lower g first among equal f keeps every first-discovery g optimal.
type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	fi, fj := q[i].f(), q[j].f()
	if fi != fj {
		return fi < fj
	}
	if q[i].g != q[j].g {
		return q[i].g < q[j].g
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() interface{} {
	old := *q
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*q = old[:last]
	return n
}
