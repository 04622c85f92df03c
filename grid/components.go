package grid

// Components returns every 4-connected region of passable cells.
// Each region lists coordinates in discovery order; regions are ordered by
// their first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, cell := range g.cells {
		if cell == Wall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Connected reports whether a and b lie in the same passable region.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	for _, comp := range g.Components() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
