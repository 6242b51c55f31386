package tetris

import (
	"fmt"
	"strings"
)

// FigureType is one of the seven tetromino shapes. The zero value None marks
// an empty board cell.
type FigureType int

const (
	None FigureType = iota
	I
	J
	L
	O
	S
	T
	Z
)

var AllFigureTypes = []FigureType{I, J, L, O, S, T, Z}

var figureColors = map[FigureType]Color{
	I: rgb(108, 237, 238),
	J: rgb(0, 33, 230),
	L: rgb(229, 162, 67),
	O: rgb(241, 238, 79),
	S: rgb(221, 47, 23),
	T: rgb(146, 45, 231),
	Z: rgb(110, 235, 71),
}

var initialMatrices = map[FigureType][][]uint8{
	I: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	J: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	L: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
	O: {
		{1, 1},
		{1, 1},
	},
	S: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	T: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	Z: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
}

func rgb(r, g, b float64) Color {
	return Color{R: r / 255, G: g / 255, B: b / 255, A: 1}
}

func (t FigureType) valid() bool {
	return t >= I && t <= Z
}

func (t FigureType) String() string {
	switch t {
	case None:
		return "None"
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("FigureType(%d)", int(t))
	}
}

func ParseFigureType(s string) (FigureType, error) {
	for _, t := range AllFigureTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return None, fmt.Errorf("unknown figure type %q", s)
}

// Color returns the fixed color of the figure type. None has the zero color.
func (t FigureType) Color() Color {
	return figureColors[t]
}

// InitialMatrix returns the spawn orientation of the figure type.
func (t FigureType) InitialMatrix() Matrix {
	if !t.valid() {
		panic(fmt.Sprintf("tetris: no matrix for figure type %s", t))
	}

	return NewMatrix(initialMatrices[t])
}
