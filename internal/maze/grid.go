package maze

import "slices"

// CellID is the row-major index of a cell in a Grid.
type CellID int

// EdgeID is the index of an edge in a Grid.
type EdgeID int

// NoEdge marks an adjacency slot on the grid boundary.
const NoEdge EdgeID = -1

// Direction names one of the four adjacency slots of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in slot order.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// delta returns the column and row offsets of a step in direction d.
func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Cell is a single square of the board.
type Cell struct {
	Col, Row int

	// Set is the disjoint-set tag used while the spanning tree is built.
	// It has no meaning once generation is finished.
	Set int

	// OnPath is set by Solve on cells of the reconstructed path.
	OnPath bool

	edges [4]EdgeID // indexed by Direction
}

// Edge returns the edge in the given slot, or NoEdge on the boundary.
func (c Cell) Edge(d Direction) EdgeID {
	return c.edges[d]
}

// Edge is the potential passage between two neighboring cells.
// Start is the cell above or to the left of End.
type Edge struct {
	Start, End CellID
	Weight     int

	// Blocked is true while the wall between Start and End is intact.
	Blocked bool
}

// Other returns the endpoint of e that is not id.
func (e Edge) Other(id CellID) CellID {
	if e.Start == id {
		return e.End
	}
	return e.Start
}

// Grid holds the cells and edges of one board.
type Grid struct {
	Width, Height int
	Cells         []Cell
	Edges         []Edge
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.Cells)
}

// Clone returns a deep copy of the grid. A plain value copy shares the
// cell and edge slices with the original.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  slices.Clone(g.Cells),
		Edges:  slices.Clone(g.Edges),
	}
}

// Index returns the CellID at (col, row) and whether it lies on the board.
func (g *Grid) Index(col, row int) (CellID, bool) {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return 0, false
	}
	return CellID(row*g.Width + col), true
}

// Contains reports whether id names a cell of the grid.
func (g *Grid) Contains(id CellID) bool {
	return id >= 0 && int(id) < len(g.Cells)
}

// Cell returns a pointer to the cell with the given ID.
// The ID must be valid.
func (g *Grid) Cell(id CellID) *Cell {
	return &g.Cells[id]
}

// Start returns the top-left cell.
func (g *Grid) Start() CellID {
	return 0
}

// Goal returns the bottom-right cell.
func (g *Grid) Goal() CellID {
	return CellID(len(g.Cells) - 1)
}

// Neighbor returns the cell next to id in direction d, ignoring walls.
// The ID must be valid.
func (g *Grid) Neighbor(id CellID, d Direction) (CellID, bool) {
	c := g.Cells[id]
	dc, dr := d.delta()
	return g.Index(c.Col+dc, c.Row+dr)
}

// HasWall reports whether a wall separates id from its neighbor in
// direction d. The outer boundary always counts as a wall.
// The ID must be valid.
func (g *Grid) HasWall(id CellID, d Direction) bool {
	e := g.Cells[id].edges[d]
	if e == NoEdge {
		return true
	}
	return g.Edges[e].Blocked
}

// Passable reports whether a player at id may step in direction d.
func (g *Grid) Passable(id CellID, d Direction) bool {
	return !g.HasWall(id, d)
}

// OpenEdges returns the unblocked edges around id in slot order.
// The ID must be valid.
func (g *Grid) OpenEdges(id CellID) []EdgeID {
	var open []EdgeID
	for _, d := range Directions {
		e := g.Cells[id].edges[d]
		if e != NoEdge && !g.Edges[e].Blocked {
			open = append(open, e)
		}
	}
	return open
}

// Adjacent reports whether a and b share an unblocked edge.
func (g *Grid) Adjacent(a, b CellID) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	for _, e := range g.OpenEdges(a) {
		if g.Edges[e].Other(a) == b {
			return true
		}
	}
	return false
}

// OpenCount returns the number of unblocked edges.
func (g *Grid) OpenCount() int {
	n := 0
	for _, e := range g.Edges {
		if !e.Blocked {
			n++
		}
	}
	return n
}

// ClearPath resets the OnPath marker of every cell.
func (g *Grid) ClearPath() {
	for i := range g.Cells {
		g.Cells[i].OnPath = false
	}
}

// Reset restores the state produced by the board factory: every edge
// blocked, every cell its own set and no path marked. Weights are kept.
func (g *Grid) Reset() {
	for i := range g.Edges {
		g.Edges[i].Blocked = true
	}
	for i := range g.Cells {
		g.Cells[i].Set = i
		g.Cells[i].OnPath = false
	}
}

// EdgeOrder returns every EdgeID in construction order.
func (g *Grid) EdgeOrder() []EdgeID {
	order := make([]EdgeID, len(g.Edges))
	for i := range order {
		order[i] = EdgeID(i)
	}
	return order
}
