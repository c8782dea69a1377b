package maze

// Regions finds all contiguous groups of open cells under 4-connectivity.
// Regions are ordered by their first cell in row-major order; each region
// lists its nodes in flood-fill order starting from that cell.
//
// Time:   O(H·W).
// Memory: O(H·W) for visited flags and output.
func (m *Maze) Regions() [][]Node {
	seen := make([]bool, m.height*m.width)
	var regions [][]Node
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if seen[r*m.width+c] || !m.IsOpen(At(r, c)) {
				continue
			}
			region := m.flood(At(r, c))
			for _, n := range region {
				seen[n.Row*m.width+n.Col] = true
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// Connected reports whether a and b are open and share a region, i.e.
// whether any search from a can reach b.
func (m *Maze) Connected(a, b Node) bool {
	if !m.IsOpen(a) || !m.IsOpen(b) {
		return false
	}
	for _, n := range m.flood(a) {
		if n == b {
			return true
		}
	}
	return false
}

// flood collects the region containing the open node from, breadth first.
func (m *Maze) flood(from Node) []Node {
	seen := map[Node]struct{}{from: {}}
	queue := []Node{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, mv := range m.Neighbors(queue[qi], false, nil) {
			if _, ok := seen[mv.Node]; ok {
				continue
			}
			seen[mv.Node] = struct{}{}
			queue = append(queue, mv.Node)
		}
	}
	return queue
}
