package render

// Point is a screen cell.
type Point struct {
	X, Y int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Line rasterizes the segment from a to b with Bresenham's algorithm. Both
// ends are included and cells are listed from a to b.
func Line(a, b Point) []Point {
	dx, sx := abs(b.X-a.X), 1
	if a.X > b.X {
		sx = -1
	}
	dy, sy := -abs(b.Y-a.Y), 1
	if a.Y > b.Y {
		sy = -1
	}

	out := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for p := a; ; {
		out = append(out, p)
		if p == b {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}
