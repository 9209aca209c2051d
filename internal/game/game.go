package game

import "fmt"

const (
	DefaultRows = 38
	DefaultCols = 22
)

// Game is one session: the board, both scores, the borders drawn so far and
// whose turn it is. A Game is not safe for concurrent use; placements must be
// serialized by the caller.
type Game struct {
	board   *Board
	scores  [2]int
	borders []Border
	current Player
	moves   []Move
	names   map[Player]string
}

// Option configures a new Game.
type Option func(*Game)

// WithNames sets the display names of both players.
func WithNames(blue, red string) Option {
	return func(g *Game) {
		g.names[Blue] = blue
		g.names[Red] = red
	}
}

// WithFirst sets the player who moves first. Blue moves first by default.
func WithFirst(p Player) Option {
	return func(g *Game) {
		if p.Valid() {
			g.current = p
		}
	}
}

// New starts a game on an empty rows x cols board.
func New(rows, cols int, opts ...Option) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:   board,
		current: Blue,
		names:   map[Player]string{Blue: "Blue", Red: "Red"},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// PlacePoint puts an active point of p at (i, j) and resolves every
// encirclement it closes. On error nothing changes.
func (g *Game) PlacePoint(i, j int, p Player) (PlaceResult, error) {
	at := Coord{I: i, J: j}
	if err := g.board.checkPlacement(at, p); err != nil {
		return PlaceResult{}, fmt.Errorf("place %v for %v: %w", at, p, err)
	}

	g.board.put(at, p)
	g.moves = append(g.moves, Move{Player: p, At: at})

	capture := g.board.ResolveCaptures(at, p)
	g.scores[scoreIndex(p)] += len(capture.Captured)
	g.borders = append(g.borders, capture.Borders...)

	return PlaceResult{
		Player:     p,
		At:         at,
		Captured:   capture.Captured,
		ScoreDelta: len(capture.Captured),
		NewBorders: capture.Borders,
	}, nil
}

// Play places a point for the current player and, on success, hands the
// turn to the opponent.
func (g *Game) Play(i, j int) (PlaceResult, error) {
	res, err := g.PlacePoint(i, j, g.current)
	if err != nil {
		return res, err
	}
	g.current = g.current.Opponent()
	return res, nil
}

func scoreIndex(p Player) int {
	return int(p) - 1
}

func (g *Game) Rows() int { return g.board.rows }
func (g *Game) Cols() int { return g.board.cols }

// Cell returns the cell at (i, j) and whether it is on the board.
func (g *Game) Cell(i, j int) (Cell, bool) {
	c := Coord{I: i, J: j}
	if !g.board.InBounds(c) {
		return Cell{}, false
	}
	return g.board.At(c), true
}

// Board returns a copy of the board.
func (g *Game) Board() *Board {
	return g.board.clone()
}

func (g *Game) CurrentPlayer() Player {
	return g.current
}

// Score returns p's score, or 0 for an unknown player.
func (g *Game) Score(p Player) int {
	if !p.Valid() {
		return 0
	}
	return g.scores[scoreIndex(p)]
}

func (g *Game) Scores() map[Player]int {
	return map[Player]int{Blue: g.scores[0], Red: g.scores[1]}
}

// Borders returns every border captured so far, oldest first.
func (g *Game) Borders() []Border {
	out := make([]Border, len(g.borders))
	for k, b := range g.borders {
		out[k] = append(Border(nil), b...)
	}
	return out
}

func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

func (g *Game) Name(p Player) string {
	return g.names[p]
}
