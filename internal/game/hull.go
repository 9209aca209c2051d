package game

import "sort"

// cross is the z component of (a-o) x (b-o). Positive means o->a->b turns left.
func cross(o, a, b Coord) int {
	return (a.I-o.I)*(b.J-o.J) - (a.J-o.J)*(b.I-o.I)
}

func dist2(a, b Coord) int {
	di, dj := a.I-b.I, a.J-b.J
	return di*di + dj*dj
}

// ConvexHull orders points into their convex hull with a Graham scan.
//
// Zero or one point is returned as is. Otherwise the anchor is the point with
// the smallest J (then smallest I), the rest are sorted by angle around it
// using exact integer cross products, and collinear points are dropped. The
// result runs counter-clockwise in the (I, J) frame. The input is not
// modified.
func ConvexHull(points []Coord) Border {
	pts := dedup(points)
	if len(pts) <= 1 {
		return Border(pts)
	}

	anchor := 0
	for k, p := range pts {
		if p.J < pts[anchor].J || (p.J == pts[anchor].J && p.I < pts[anchor].I) {
			anchor = k
		}
	}
	pts[0], pts[anchor] = pts[anchor], pts[0]
	start := pts[0]
	rest := pts[1:]

	// Every point lies at or above the anchor's row, and points on that row
	// lie to its right, so angles span [0, pi) and the comparator is a
	// strict weak order.
	sort.SliceStable(rest, func(x, y int) bool {
		c := cross(start, rest[x], rest[y])
		if c != 0 {
			return c > 0
		}
		return dist2(start, rest[x]) < dist2(start, rest[y])
	})

	hull := make(Border, 0, len(pts))
	hull = append(hull, start)
	for _, p := range rest {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

func dedup(points []Coord) []Coord {
	seen := make(map[Coord]struct{}, len(points))
	out := make([]Coord, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
