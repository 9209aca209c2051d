package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"encircle/internal/game"
	"encircle/internal/render"
)

var (
	styleGrid     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlue     = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleRed      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCaptured = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// ui is a hot-seat renderer: both players share the screen, the mouse and
// the keyboard cursor.
type ui struct {
	screen  tcell.Screen
	game    *game.Game
	layout  render.Layout
	cursor  game.Coord
	status  string
	pressed bool

	newGame func() (*game.Game, error)
}

func newUI(screen tcell.Screen, newGame func() (*game.Game, error), hitRadius float64) (*ui, error) {
	g, err := newGame()
	if err != nil {
		return nil, err
	}
	return &ui{
		screen: screen,
		game:   g,
		layout: render.Layout{
			OriginX:   1,
			OriginY:   1,
			StepX:     3,
			StepY:     1,
			HitRadius: hitRadius,
			Cols:      g.Cols(),
			Rows:      g.Rows(),
		},
		newGame: newGame,
	}, nil
}

func (u *ui) place(c game.Coord) {
	res, err := u.game.Play(c.I, c.J)
	switch {
	case errors.Is(err, game.ErrCellOccupied):
		u.status = "That intersection is taken."
	case err != nil:
		u.status = err.Error()
	case res.ScoreDelta > 0:
		u.status = fmt.Sprintf("%s encircled %d point(s)!", u.game.Name(res.Player), res.ScoreDelta)
	default:
		u.status = ""
	}
}

func (u *ui) reset() {
	g, err := u.newGame()
	if err != nil {
		u.status = err.Error()
		return
	}
	u.game = g
	u.cursor = game.Coord{}
	u.status = "New game."
}

func (u *ui) move(di, dj int) {
	c := game.Coord{I: u.cursor.I + di, J: u.cursor.J + dj}
	if c.I < 0 || c.J < 0 || c.I >= u.game.Cols() || c.J >= u.game.Rows() {
		return
	}
	u.cursor = c
}

// handle applies one event and reports whether the program should keep
// running.
func (u *ui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			u.move(0, -1)
		case tcell.KeyDown:
			u.move(0, 1)
		case tcell.KeyLeft:
			u.move(-1, 0)
		case tcell.KeyRight:
			u.move(1, 0)
		case tcell.KeyEnter:
			u.place(u.cursor)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				u.place(u.cursor)
			case 'r':
				u.reset()
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !u.pressed {
			x, y := ev.Position()
			if c, ok := u.layout.Intersection(float64(x), float64(y)); ok {
				u.cursor = c
				u.place(c)
			}
		}
		u.pressed = down
	}
	return true
}

func (u *ui) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *ui) draw() {
	u.screen.Clear()
	s := u.game.Snapshot()

	for j := 0; j < s.Rows; j++ {
		for i := 0; i < s.Cols; i++ {
			x, y := u.layout.Screen(game.Coord{I: i, J: j})
			u.screen.SetContent(x, y, '+', nil, styleGrid)
		}
	}

	for _, border := range s.Borders {
		if len(border) < 2 {
			continue
		}
		for k := range border {
			ax, ay := u.layout.Screen(border[k])
			bx, by := u.layout.Screen(border[(k+1)%len(border)])
			for _, p := range render.Line(render.Point{X: ax, Y: ay}, render.Point{X: bx, Y: by}) {
				u.screen.SetContent(p.X, p.Y, '*', nil, styleBorder)
			}
		}
	}

	for _, p := range s.Points {
		style := styleCaptured
		switch {
		case p.Active && p.Owner == game.Blue:
			style = styleBlue
		case p.Active && p.Owner == game.Red:
			style = styleRed
		}
		x, y := u.layout.Screen(p.At)
		u.screen.SetContent(x, y, render.Glyph(p.Owner, p.Active), nil, style)
	}

	cx, cy := u.layout.Screen(u.cursor)
	r, _, style, _ := u.screen.GetContent(cx, cy)
	u.screen.SetContent(cx, cy, r, nil, style.Reverse(true))

	side := int(u.layout.OriginX+float64(s.Cols)*u.layout.StepX) + 2
	for k, line := range strings.Split(render.ScoreLine(s), "\n") {
		u.text(side, 1+k, line, styleText)
	}
	u.text(side, 5, "arrows move, space places", styleGrid)
	u.text(side, 6, "click an intersection", styleGrid)
	u.text(side, 7, "r reset, q quit", styleGrid)
	u.text(side, 9, u.status, styleText)

	u.screen.Show()
}
