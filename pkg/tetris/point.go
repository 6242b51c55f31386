package tetris

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

type Size struct {
	Width, Height int
}

// Color components are in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Block is one drawable rectangle in board cells.
type Block struct {
	X, Y          int
	Width, Height int
	Color         Color
}

func (b Block) Position() Point {
	return Point{b.X, b.Y}
}
