package game

import (
	"encoding/json"
	"fmt"
)

// Player identifies one of the two sides.
type Player uint8

const (
	NoPlayer Player = iota
	Blue
	Red
)

func (p Player) Valid() bool {
	return p == Blue || p == Red
}

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(b []byte) error {
	v, err := ParsePlayer(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlayer accepts "blue" or "red".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	}
	return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

// Coord addresses an intersection: I is the column, J the row.
type Coord struct {
	I, J int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// MarshalJSON encodes a coordinate as [i, j], the shape renderers draw from.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.I, c.J})
}

func (c *Coord) UnmarshalJSON(b []byte) error {
	var v [2]int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	c.I, c.J = v[0], v[1]
	return nil
}

// Cell holds the point placed on an intersection, if any.
type Cell struct {
	Owner  Player `json:"owner"`
	Active bool   `json:"active"`
}

func (c Cell) Empty() bool {
	return c.Owner == NoPlayer
}

// passable reports whether a zone explored for p may extend through c.
func (c Cell) passable(p Player) bool {
	return c.Empty() || !c.Active || c.Owner != p
}

// isEnemyOf reports whether c holds an active point that p can capture.
func (c Cell) isEnemyOf(p Player) bool {
	return !c.Empty() && c.Active && c.Owner != p
}

// Border is a closed polygon drawn around captured territory.
type Border []Coord

// Move records one accepted placement.
type Move struct {
	Player Player `json:"player"`
	At     Coord  `json:"at"`
}

// PlaceResult describes everything a single placement changed.
type PlaceResult struct {
	Player     Player   `json:"player"`
	At         Coord    `json:"at"`
	Captured   []Coord  `json:"captured"`
	ScoreDelta int      `json:"scoreDelta"`
	NewBorders []Border `json:"newBorders"`
}

// directions is the fixed neighbour order used by every traversal.
var directions = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
