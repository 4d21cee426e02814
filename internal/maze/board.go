package maze

import (
	"math/rand"
	"time"
)

// DefaultWeightBound is the exclusive upper bound of random edge weights.
const DefaultWeightBound = 1000

// Options configures board construction.
type Options struct {
	Rand        *rand.Rand
	WeightBound int
}

// Option modifies Options.
type Option func(*Options)

// WithSeed draws edge weights from a source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand draws edge weights from rng.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithWeightBound sets the exclusive upper bound of edge weights.
func WithWeightBound(bound int) Option {
	return func(o *Options) { o.WeightBound = bound }
}

// NewBoard builds a width x height board with time-seeded weights.
func NewBoard(width, height int) (*Grid, error) {
	return Build(width, height)
}

// NewBoardSeeded builds a reproducible width x height board.
func NewBoardSeeded(width, height int, seed int64) (*Grid, error) {
	return Build(width, height, WithSeed(seed))
}

// Build creates a board with every adjacent pair of cells joined by a
// blocked edge. Cells are numbered row-major and each starts in its own set.
// For every cell the edge to the cell below is created before the edge to
// the cell on the right.
func Build(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidSize
	}

	o := Options{WeightBound: DefaultWeightBound}
	for _, opt := range opts {
		opt(&o)
	}
	if o.WeightBound < 1 {
		return nil, ErrInvalidWeightBound
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	n := width * height
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, n),
		Edges:  make([]Edge, 0, 2*n-width-height),
	}

	for i := range g.Cells {
		g.Cells[i] = Cell{
			Col:   i % width,
			Row:   i / width,
			Set:   i,
			edges: [4]EdgeID{NoEdge, NoEdge, NoEdge, NoEdge},
		}
	}

	for i := 0; i < n; i++ {
		if i+width < n {
			g.connect(CellID(i), CellID(i+width), Down, o.Rand.Intn(o.WeightBound))
		}
		if i%width != width-1 {
			g.connect(CellID(i), CellID(i+1), Right, o.Rand.Intn(o.WeightBound))
		}
	}

	return g, nil
}

// connect adds a blocked edge from start towards end in direction d and
// fills the matching slots of both cells.
func (g *Grid) connect(start, end CellID, d Direction, weight int) {
	id := EdgeID(len(g.Edges))
	g.Edges = append(g.Edges, Edge{
		Start:   start,
		End:     end,
		Weight:  weight,
		Blocked: true,
	})
	g.Cells[start].edges[d] = id
	g.Cells[end].edges[d.Opposite()] = id
}
