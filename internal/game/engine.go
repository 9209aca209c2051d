package game

// Capture is the outcome of resolving encirclements around one placement.
type Capture struct {
	Captured []Coord
	Borders  []Border
}

// ResolveCaptures checks every zone touching the point just placed at `at`
// by p. Each zone that is enclosed and holds enemy active points has those
// points deactivated, and the hull of p's fence around it becomes a border.
// The four neighbours share one visited set, so a zone reached from several
// directions is judged once.
func (b *Board) ResolveCaptures(at Coord, p Player) Capture {
	var out Capture
	visited := b.newVisited()

	for _, d := range directions {
		n := Coord{at.I + d.I, at.J + d.J}
		if !b.InBounds(n) || !b.At(n).passable(p) || visited.Test(uint(b.index(n))) {
			continue
		}

		zone := b.ExploreZone(n, p, visited)
		if !zone.Captures() {
			continue
		}

		for _, c := range zone.Cells {
			if b.At(c).isEnemyOf(p) {
				b.deactivate(c)
				out.Captured = append(out.Captured, c)
			}
		}

		if hull := ConvexHull(b.FencePoints(zone.Cells, p)); len(hull) > 0 {
			out.Borders = append(out.Borders, hull)
		}
	}

	return out
}

// FencePoints returns p's active points 4-adjacent to any cell of zone,
// without duplicates, in the order they are first met.
func (b *Board) FencePoints(zone []Coord, p Player) []Coord {
	seen := b.newVisited()
	var fence []Coord

	for _, c := range zone {
		for _, d := range directions {
			n := Coord{c.I + d.I, c.J + d.J}
			if !b.InBounds(n) {
				continue
			}
			cell := b.At(n)
			if cell.Owner != p || !cell.Active {
				continue
			}
			idx := uint(b.index(n))
			if seen.Test(idx) {
				continue
			}
			seen.Set(idx)
			fence = append(fence, n)
		}
	}

	return fence
}
