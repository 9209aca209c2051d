package render

import (
	"math"

	"encircle/internal/game"
)

// DefaultHitRadius is how far from an intersection, in steps, a click
// still counts as aimed at it.
const DefaultHitRadius = 0.4

// Layout maps board intersections to screen positions. Intersection (0, 0)
// sits at the origin and each step moves StepX right or StepY down.
type Layout struct {
	OriginX, OriginY float64
	StepX, StepY     float64
	HitRadius        float64
	Cols, Rows       int
}

// Intersection translates a pointer position to the nearest intersection.
// It reports false when the pointer is further than HitRadius steps from
// every intersection or the nearest one is off the board.
func (l Layout) Intersection(x, y float64) (game.Coord, bool) {
	if l.StepX <= 0 || l.StepY <= 0 {
		return game.Coord{}, false
	}
	fx := (x - l.OriginX) / l.StepX
	fy := (y - l.OriginY) / l.StepY
	i, j := math.Round(fx), math.Round(fy)

	if math.Hypot(fx-i, fy-j) > l.HitRadius {
		return game.Coord{}, false
	}
	c := game.Coord{I: int(i), J: int(j)}
	if c.I < 0 || c.J < 0 || c.I >= l.Cols || c.J >= l.Rows {
		return game.Coord{}, false
	}
	return c, true
}

// Screen returns the screen position of an intersection, rounded to whole
// cells.
func (l Layout) Screen(c game.Coord) (x, y int) {
	return int(math.Round(l.OriginX + float64(c.I)*l.StepX)),
		int(math.Round(l.OriginY + float64(c.J)*l.StepY))
}
