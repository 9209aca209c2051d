package game

// PointView is a placed point as a renderer sees it.
type PointView struct {
	At     Coord  `json:"at"`
	Owner  Player `json:"owner"`
	Active bool   `json:"active"`
}

// Snapshot is a read-only, JSON-ready copy of a game.
type Snapshot struct {
	Rows    int               `json:"rows"`
	Cols    int               `json:"cols"`
	Points  []PointView       `json:"points"`
	Scores  map[Player]int    `json:"scores"`
	Names   map[Player]string `json:"names"`
	Borders []Border          `json:"borders"`
	Current Player            `json:"current"`
	Moves   int               `json:"moves"`
}

// Snapshot copies the state a renderer needs to draw the game. Points are
// listed row by row.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Rows:    g.board.rows,
		Cols:    g.board.cols,
		Points:  []PointView{},
		Scores:  g.Scores(),
		Names:   map[Player]string{Blue: g.names[Blue], Red: g.names[Red]},
		Borders: g.Borders(),
		Current: g.current,
		Moves:   len(g.moves),
	}
	for j := 0; j < g.board.rows; j++ {
		for i := 0; i < g.board.cols; i++ {
			c := g.board.At(Coord{I: i, J: j})
			if c.Empty() {
				continue
			}
			s.Points = append(s.Points, PointView{At: Coord{I: i, J: j}, Owner: c.Owner, Active: c.Active})
		}
	}
	return s
}
