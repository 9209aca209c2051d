package render

import (
	"fmt"
	"strings"

	"encircle/internal/game"
)

// Glyphs used by ASCII.
const (
	glyphEmpty  = '.'
	glyphBorder = '*'
)

// Glyph returns the character for a point: upper case while active, lower
// case once captured.
func Glyph(owner game.Player, active bool) rune {
	switch {
	case owner == game.Blue && active:
		return 'B'
	case owner == game.Blue:
		return 'b'
	case owner == game.Red && active:
		return 'R'
	case owner == game.Red:
		return 'r'
	}
	return glyphEmpty
}

// ASCII draws a snapshot as text. Intersections sit two columns apart so
// border edges have room between them.
func ASCII(s game.Snapshot) string {
	if s.Rows <= 0 || s.Cols <= 0 {
		return ""
	}
	width := 2*s.Cols - 1
	canvas := make([][]rune, s.Rows)
	for j := range canvas {
		canvas[j] = []rune(strings.Repeat(" ", width))
		for i := 0; i < s.Cols; i++ {
			canvas[j][2*i] = glyphEmpty
		}
	}

	layout := Layout{StepX: 2, StepY: 1}
	for _, border := range s.Borders {
		if len(border) < 2 {
			continue
		}
		for k := range border {
			ax, ay := layout.Screen(border[k])
			bx, by := layout.Screen(border[(k+1)%len(border)])
			for _, p := range Line(Point{ax, ay}, Point{bx, by}) {
				canvas[p.Y][p.X] = glyphBorder
			}
		}
	}

	for _, p := range s.Points {
		canvas[p.At.J][2*p.At.I] = Glyph(p.Owner, p.Active)
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ScoreLine is the sidebar text: both scores and whose turn it is.
func ScoreLine(s game.Snapshot) string {
	return fmt.Sprintf("Score: %s (Blue): %d\n%s (Red): %d\nCurrent Player: %s (%s)",
		s.Names[game.Blue], s.Scores[game.Blue],
		s.Names[game.Red], s.Scores[game.Red],
		s.Names[s.Current], s.Current,
	)
}
