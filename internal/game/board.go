package game

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a placement targets a cell off the board.
	ErrOutOfBounds = errors.New("position is out of bounds")
	// ErrCellOccupied is returned when a placement targets a non-empty cell.
	ErrCellOccupied = errors.New("cell is occupied")
	// ErrUnknownPlayer is returned for anything other than Blue or Red.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrBoardSize is returned by NewBoard for non-positive dimensions.
	ErrBoardSize = errors.New("board size must be positive")
)

// Board is the grid of intersections. The zero value is not usable.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board with the given number of rows and columns.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBoardSize, cols, rows)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) InBounds(c Coord) bool {
	return c.I >= 0 && c.I < b.cols && c.J >= 0 && c.J < b.rows
}

// At returns the cell at c. Callers must bounds-check first.
func (b *Board) At(c Coord) Cell {
	return b.cells[b.index(c)]
}

func (b *Board) index(c Coord) int {
	return c.J*b.cols + c.I
}

// onOpenEdge reports whether c lies on the top, bottom or right edge.
// Column 0 is a wall and never opens a zone.
func (b *Board) onOpenEdge(c Coord) bool {
	return c.J == 0 || c.J == b.rows-1 || c.I == b.cols-1
}

// checkPlacement validates a placement without touching the board.
func (b *Board) checkPlacement(c Coord, p Player) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, b.cols, b.rows)
	}
	if !b.At(c).Empty() {
		return fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}
	return nil
}

func (b *Board) put(c Coord, p Player) {
	b.cells[b.index(c)] = Cell{Owner: p, Active: true}
}

func (b *Board) deactivate(c Coord) {
	b.cells[b.index(c)].Active = false
}

// Cells returns a row-major copy of the grid: result[j][i].
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.rows)
	for j := range out {
		out[j] = make([]Cell, b.cols)
		copy(out[j], b.cells[j*b.cols:(j+1)*b.cols])
	}
	return out
}

func (b *Board) clone() *Board {
	cp := &Board{rows: b.rows, cols: b.cols, cells: make([]Cell, len(b.cells))}
	copy(cp.cells, b.cells)
	return cp
}
