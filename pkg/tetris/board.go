package tetris

import (
	"fmt"
	"strings"
)

// Board is the grid of locked cells. Boards are persistent: every change
// returns a new Board and leaves the receiver untouched.
type Board struct {
	cells [][]FigureType
}

func NewBoard(size Size) *Board {
	if size.Width <= 0 || size.Height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", size.Width, size.Height))
	}

	cells := make([][]FigureType, size.Height)
	for y := range cells {
		cells[y] = make([]FigureType, size.Width)
	}

	return &Board{cells: cells}
}

func (b *Board) Height() int {
	return len(b.cells)
}

func (b *Board) Width() int {
	if len(b.cells) == 0 {
		return 0
	}

	return len(b.cells[0])
}

func (b *Board) Size() Size {
	return Size{Width: b.Width(), Height: b.Height()}
}

func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width() && p.Y >= 0 && p.Y < b.Height()
}

// FigureAt returns the type locked at x, y, or None for an empty cell.
func (b *Board) FigureAt(x int, y int) FigureType {
	b.check(x, y)

	return b.cells[y][x]
}

// ReplacedAt returns a board identical to b except for the cell at x, y.
func (b *Board) ReplacedAt(x int, y int, t FigureType) *Board {
	b.check(x, y)

	n := b.clone()
	n.cells[y][x] = t

	return n
}

// Placing returns a board with every point set to t.
func (b *Board) Placing(points []Point, t FigureType) *Board {
	for _, p := range points {
		b.check(p.X, p.Y)
	}

	n := b.clone()
	for _, p := range points {
		n.cells[p.Y][p.X] = t
	}

	return n
}

// Contains reports whether p is on the board and occupied.
func (b *Board) Contains(p Point) bool {
	return b.InBounds(p) && b.cells[p.Y][p.X] != None
}

func (b *Board) IsLineCompleted(row int) bool {
	b.check(0, row)

	for _, t := range b.cells[row] {
		if t == None {
			return false
		}
	}

	return true
}

// CompletedLines returns the completed rows from top to bottom.
func (b *Board) CompletedLines() []int {
	var rows []int
	for y := range b.cells {
		if b.IsLineCompleted(y) {
			rows = append(rows, y)
		}
	}

	return rows
}

// RemovingLines drops the given rows. Rows above a removed row move down and
// empty rows are added at the top, so the board keeps its size. Rows outside
// the board are ignored.
func (b *Board) RemovingLines(rows []int) *Board {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.Height() {
			remove[y] = true
		}
	}

	cells := make([][]FigureType, 0, b.Height())
	for range remove {
		cells = append(cells, make([]FigureType, b.Width()))
	}

	for y, row := range b.cells {
		if remove[y] {
			continue
		}

		line := make([]FigureType, len(row))
		copy(line, row)
		cells = append(cells, line)
	}

	return &Board{cells: cells}
}

// String draws the board with one rune per cell, '.' marking empty cells.
func (b *Board) String() string {
	var s strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			s.WriteRune('\n')
		}

		for _, t := range row {
			if t == None {
				s.WriteRune('.')
			} else {
				s.WriteString(t.String())
			}
		}
	}

	return s.String()
}

func (b *Board) clone() *Board {
	cells := make([][]FigureType, len(b.cells))
	for y, row := range b.cells {
		cells[y] = make([]FigureType, len(row))
		copy(cells[y], row)
	}

	return &Board{cells: cells}
}

func (b *Board) check(x int, y int) {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		panic(fmt.Sprintf("tetris: board point (%d,%d) out of bounds (%dx%d)", x, y, b.Width(), b.Height()))
	}
}
