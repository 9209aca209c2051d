package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encircle/internal/game"
	"encircle/internal/render"
)

func TestIntersection(t *testing.T) {
	l := render.Layout{OriginX: 10, OriginY: 5, StepX: 20, StepY: 10, HitRadius: render.DefaultHitRadius, Cols: 4, Rows: 4}

	tests := []struct {
		name string
		x, y float64
		want game.Coord
		ok   bool
	}{
		{name: "origin", x: 10, y: 5, want: game.Coord{I: 0, J: 0}, ok: true},
		{name: "inside radius", x: 37, y: 15, want: game.Coord{I: 1, J: 1}, ok: true},
		{name: "just outside radius", x: 39, y: 15},
		{name: "diagonal miss", x: 36, y: 18},
		{name: "right of board", x: 90, y: 5},
		{name: "left of board", x: -10, y: 5},
		{name: "below board", x: 10, y: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.Intersection(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	x, y := l.Screen(game.Coord{I: 2, J: 3})
	assert.Equal(t, 50, x)
	assert.Equal(t, 35, y)
}

func TestIntersectionZeroLayout(t *testing.T) {
	_, ok := render.Layout{}.Intersection(0, 0)
	assert.False(t, ok)
}

func TestLine(t *testing.T) {
	p := func(x, y int) render.Point { return render.Point{X: x, Y: y} }

	tests := []struct {
		name string
		a, b render.Point
		want []render.Point
	}{
		{name: "single", a: p(2, 2), b: p(2, 2), want: []render.Point{p(2, 2)}},
		{name: "horizontal", a: p(0, 0), b: p(3, 0), want: []render.Point{p(0, 0), p(1, 0), p(2, 0), p(3, 0)}},
		{name: "vertical up", a: p(0, 0), b: p(0, -2), want: []render.Point{p(0, 0), p(0, -1), p(0, -2)}},
		{name: "shallow", a: p(4, 0), b: p(6, 1), want: []render.Point{p(4, 0), p(5, 1), p(6, 1)}},
		{name: "shallow reversed", a: p(6, 1), b: p(4, 0), want: []render.Point{p(6, 1), p(5, 0), p(4, 0)}},
		{name: "diagonal", a: p(0, 0), b: p(2, 2), want: []render.Point{p(0, 0), p(1, 1), p(2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Line(tt.a, tt.b))
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	for dx := -5; dx <= 5; dx++ {
		for dy := -5; dy <= 5; dy++ {
			a, b := render.Point{X: 3, Y: -1}, render.Point{X: 3 + dx, Y: -1 + dy}
			line := render.Line(a, b)
			require.Equal(t, a, line[0])
			require.Equal(t, b, line[len(line)-1])
			require.Len(t, line, max(abs(dx), abs(dy))+1, "%v -> %v", a, b)
			for k := 1; k < len(line); k++ {
				step := render.Point{X: line[k].X - line[k-1].X, Y: line[k].Y - line[k-1].Y}
				require.LessOrEqual(t, abs(step.X), 1)
				require.LessOrEqual(t, abs(step.Y), 1)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func capturedGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(4, 4, game.WithNames("Mino", "Chen"))
	require.NoError(t, err)
	for _, mv := range []struct {
		i, j int
		p    game.Player
	}{
		{1, 1, game.Blue}, {1, 2, game.Blue}, {2, 1, game.Red}, {2, 0, game.Blue}, {2, 2, game.Blue}, {3, 1, game.Blue},
	} {
		_, err := g.PlacePoint(mv.i, mv.j, mv.p)
		require.NoError(t, err)
	}
	return g
}

func TestASCII(t *testing.T) {
	g := capturedGame(t)
	want := "" +
		". .*B .\n" +
		". B*r*B\n" +
		". B B*.\n" +
		". . . .\n"
	assert.Equal(t, want, render.ASCII(g.Snapshot()))

	assert.Empty(t, render.ASCII(game.Snapshot{}))
}

func TestScoreLine(t *testing.T) {
	g := capturedGame(t)
	assert.Equal(t, "Score: Mino (Blue): 1\nChen (Red): 0\nCurrent Player: Mino (blue)", render.ScoreLine(g.Snapshot()))

	_, err := g.Play(0, 0)
	require.NoError(t, err)
	assert.Contains(t, render.ScoreLine(g.Snapshot()), "Current Player: Chen (red)")
}
