package maze

// SortEdges sorts edges[low..high] (inclusive) by ascending weight in place.
// An empty range (low > high) is a no-op. Equal weights may be reordered.
func SortEdges(edges []Edge, low, high int) error {
	return SortFunc(edges, low, high, func(e Edge) int { return e.Weight })
}

// SortEdgeIDs sorts ids[low..high] (inclusive) by the weight of the edges
// they refer to. The edges themselves do not move.
func (g *Grid) SortEdgeIDs(ids []EdgeID, low, high int) error {
	for _, id := range ids {
		if id < 0 || int(id) >= len(g.Edges) {
			return ErrInvalidEdge
		}
	}
	return SortFunc(ids, low, high, func(id EdgeID) int { return g.Edges[id].Weight })
}

// SortFunc sorts items[low..high] (inclusive) by ascending weight using
// quicksort with the middle element as pivot.
func SortFunc[T any](items []T, low, high int, weight func(T) int) error {
	if low > high {
		return nil
	}
	if low < 0 || high >= len(items) {
		return ErrRangeOutOfBounds
	}
	quicksort(items, low, high, weight)
	return nil
}

func quicksort[T any](items []T, low, high int, weight func(T) int) {
	pivot := weight(items[low+(high-low)/2])
	i, j := low, high

	// The pointers always stop on the pivot value or earlier, and each swap
	// moves both inward, so they cross in a finite number of steps even when
	// every weight is equal.
	for i <= j {
		for weight(items[i]) < pivot {
			i++
		}
		for weight(items[j]) > pivot {
			j--
		}
		if i <= j {
			items[i], items[j] = items[j], items[i]
			i++
			j--
		}
	}

	if low < j {
		quicksort(items, low, j, weight)
	}
	if i < high {
		quicksort(items, i, high, weight)
	}
}
