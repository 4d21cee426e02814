// Package maze generates and solves perfect grid mazes.
//
// A board is a rectangular grid of cells joined by edges. Every edge starts
// blocked (the wall is intact). Generate orders the edges by their random
// weight and runs Kruskal's algorithm over a disjoint-set forest, unblocking
// exactly width*height-1 edges so that the open edges form a spanning tree:
// there is one simple path between any two cells.
//
// Traverse and Solve search the open-edge graph with a single worklist loop.
// A stack-backed worklist gives depth-first order and a queue-backed one gives
// breadth-first order; nothing else differs between the two.
//
// Cells and edges live in two flat slices and refer to each other by index,
// so the grid holds no pointer cycles. A value copy still shares both slices;
// use Grid.Clone for an independent board.
//
// The package is pure: no I/O, no logging, no goroutines. Randomness comes
// from an injectable *rand.Rand so boards are reproducible for a given seed.
package maze
