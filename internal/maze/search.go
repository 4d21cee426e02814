package maze

import (
	"fmt"
	"strings"
)

// Mode selects the traversal order.
type Mode int

const (
	DepthFirst Mode = iota
	BreadthFirst
)

// String returns the short name of the mode.
func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return "unknown"
	}
}

// ParseMode parses "dfs", "depth-first", "d", "bfs", "breadth-first" or "b".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs", "depth-first", "d":
		return DepthFirst, nil
	case "bfs", "breadth-first", "b":
		return BreadthFirst, nil
	}
	return DepthFirst, fmt.Errorf("maze: unknown search mode %q", s)
}

// Search is the outcome of one traversal.
type Search struct {
	Mode  Mode
	Start CellID
	Goal  CellID
	Found bool

	// Path runs from Start to Goal when Found is true.
	Path []CellID

	// Visited lists cells in the order the loop processed them,
	// ending with Goal when Found is true.
	Visited []CellID
}

// Traverse searches the open-edge graph of g from start to goal.
// Exhausting the worklist is not an error: the result has Found == false.
func Traverse(g *Grid, start, goal CellID, mode Mode) (Search, error) {
	res := Search{Mode: mode, Start: start, Goal: goal}
	if !g.Contains(start) || !g.Contains(goal) {
		return res, ErrCellOutOfRange
	}

	cameFrom := make(map[CellID]CellID)
	visited := make([]bool, len(g.Cells))
	work := NewWorklist[CellID](mode)
	work.Add(start)

	for !work.IsEmpty() {
		next := work.RemoveNext()
		if visited[next] {
			continue
		}
		visited[next] = true
		res.Visited = append(res.Visited, next)

		if next == goal {
			res.Found = true
			res.Path = reconstruct(cameFrom, start, goal)
			return res, nil
		}

		for _, e := range g.OpenEdges(next) {
			nbr := g.Edges[e].Other(next)
			if visited[nbr] {
				continue
			}
			if _, seen := cameFrom[nbr]; !seen && nbr != start {
				cameFrom[nbr] = next
			}
			work.Add(nbr)
		}
	}

	return res, nil
}

// reconstruct walks cameFrom back from goal to start and returns the path
// in start-to-goal order.
func reconstruct(cameFrom map[CellID]CellID, start, goal CellID) []CellID {
	path := []CellID{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Solve finds a path from start to goal, marks its cells OnPath and
// returns it. Marks from an earlier Solve are cleared first.
// It returns ErrNoPath if the goal is unreachable.
func Solve(g *Grid, start, goal CellID, mode Mode) ([]CellID, error) {
	res, err := Traverse(g, start, goal, mode)
	if err != nil {
		return nil, err
	}
	g.ClearPath()
	if !res.Found {
		return nil, ErrNoPath
	}
	for _, id := range res.Path {
		g.Cells[id].OnPath = true
	}
	return res.Path, nil
}
