package game

import "github.com/bits-and-blooms/bitset"

// Zone is a connected region of cells not held by an active point of the
// player it was explored for.
type Zone struct {
	Cells         []Coord
	Enclosed      bool
	ContainsEnemy bool
}

// Captures reports whether the zone is walled in and holds enemy points.
func (z Zone) Captures() bool {
	return z.Enclosed && z.ContainsEnemy
}

// newVisited returns a bit set sized for one bit per cell.
func (b *Board) newVisited() *bitset.BitSet {
	return bitset.New(uint(len(b.cells)))
}

// ExploreZone flood-fills the zone containing seed for player p.
//
// The fill is iterative and visits neighbours in a fixed order, so the
// returned cell order is deterministic. Every visited cell is also marked in
// visited, which lets a caller skip seeds that lead into a zone it has
// already judged. A nil visited set is allowed.
func (b *Board) ExploreZone(seed Coord, p Player, visited *bitset.BitSet) Zone {
	var zone Zone
	if !b.InBounds(seed) || !b.At(seed).passable(p) {
		return zone
	}

	local := b.newVisited()
	openEdge := false
	stack := []Coord{seed}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := uint(b.index(c))
		if local.Test(idx) {
			continue
		}
		local.Set(idx)
		if visited != nil {
			visited.Set(idx)
		}
		zone.Cells = append(zone.Cells, c)

		if b.onOpenEdge(c) {
			openEdge = true
		}
		if b.At(c).isEnemyOf(p) {
			zone.ContainsEnemy = true
		}

		for _, d := range directions {
			n := Coord{c.I + d.I, c.J + d.J}
			if !b.InBounds(n) || local.Test(uint(b.index(n))) {
				continue
			}
			if b.At(n).passable(p) {
				stack = append(stack, n)
			}
		}
	}

	zone.Enclosed = !openEdge
	return zone
}
