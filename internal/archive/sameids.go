package archive

// SameIDs reports every record whose identifier collides with another
// record's identifier, returning the colliding records' .dvk file paths.
//
// The handler is first sorted alphabetically with artist grouping, so
// colliding records from the same artist cluster near each other and the
// output order is reproducible. The scan itself is an exhaustive pairwise
// comparison over the sorted id sequence: each unmarked position is
// checked against every later position, and both ends of a match are
// marked in the order found. Paths come back in mark order — within a
// collision group, ascending sorted position; groups ordered by their
// first member's sorted position.
//
// The scan is O(n²). Duplicate checking is an on-demand audit operation,
// not a hot path, and the quadratic scan keeps the reported order
// obvious.
func SameIDs(h *Handler) []string {
	h.Sort(SortAlpha, true)

	size := h.Size()
	ids := make([]string, size)
	for i := 0; i < size; i++ {
		ids[i] = h.SortedDvk(i).ID
	}

	marked := make([]bool, size)
	var positions []int
	for i := 0; i < size; i++ {
		if marked[i] {
			continue
		}
		for k := i + 1; k < size; k++ {
			if ids[i] != ids[k] {
				continue
			}
			if !marked[i] {
				marked[i] = true
				positions = append(positions, i)
			}
			if !marked[k] {
				marked[k] = true
				positions = append(positions, k)
			}
		}
	}

	paths := make([]string, 0, len(positions))
	for _, pos := range positions {
		paths = append(paths, h.SortedDvk(pos).Path)
	}
	return paths
}
