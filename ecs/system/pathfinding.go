package system

import "container/heap"

// Cell is a maze grid position.
type Cell struct {
	Row, Col int
}

func (c Cell) Step(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

func manhattan(a, b Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// FindPath runs A* over a rows×cols grid with 4-way moves. The returned path
// starts at from and ends at to. It is nil when to is unreachable, blocked,
// or more than limit cells had to be expanded.
func FindPath(from, to Cell, rows, cols int, blocked func(Cell) bool, limit int) []Cell {
	inside := func(c Cell) bool { return c.Row >= 0 && c.Col >= 0 && c.Row < rows && c.Col < cols }
	if !inside(from) || !inside(to) {
		return nil
	}
	if from == to {
		return []Cell{from}
	}
	if blocked != nil && blocked(to) {
		return nil
	}

	frontier := &cellQueue{}
	heap.Push(frontier, scoredCell{cell: from, f: manhattan(from, to)})
	came := map[Cell]Cell{}
	cost := map[Cell]int{from: 0}

	for expanded := 0; frontier.Len() > 0 && expanded < limit; expanded++ {
		cur := heap.Pop(frontier).(scoredCell).cell
		if cur == to {
			return walkBack(came, from, to)
		}
		for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			next := cur.Step(d[0], d[1])
			if !inside(next) || (blocked != nil && blocked(next)) {
				continue
			}
			g := cost[cur] + 1
			if prev, seen := cost[next]; seen && g >= prev {
				continue
			}
			cost[next] = g
			came[next] = cur
			heap.Push(frontier, scoredCell{cell: next, f: g + manhattan(next, to)})
		}
	}
	return nil
}

func walkBack(came map[Cell]Cell, from, to Cell) []Cell {
	path := []Cell{to}
	for cur := to; cur != from; {
		cur = came[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type scoredCell struct {
	cell Cell
	f    int
}

type cellQueue []scoredCell

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x any)        { *q = append(*q, x.(scoredCell)) }
func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
