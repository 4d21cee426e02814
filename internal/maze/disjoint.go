package maze

// DisjointSet is a disjoint-set forest over the integers [0, n) with
// union by size and path compression.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Find returns the representative of the set containing x.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	// Point every node on the walked path straight at the root.
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing a and b.
// Returns false if they were already the same set.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	ds.count--
	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// Size returns the number of elements in the set containing x.
func (ds *DisjointSet) Size(x int) int {
	return ds.size[ds.Find(x)]
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int {
	return ds.count
}
