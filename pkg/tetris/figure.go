package tetris

import "fmt"

const RotationStates = 4

// orientations holds the four clockwise rotations of every figure type,
// indexed by type and rotation state.
var orientations [Z + 1][RotationStates]Matrix

func init() {
	for _, t := range AllFigureTypes {
		m := t.InitialMatrix()
		for r := 0; r < RotationStates; r++ {
			orientations[t][r] = m
			m = m.Rotated()
		}
	}
}

// Figure is a figure type in one of its four orientations.
type Figure struct {
	figureType FigureType
	rotation   int
}

func NewFigure(t FigureType) Figure {
	if !t.valid() {
		panic(fmt.Sprintf("tetris: invalid figure type %s", t))
	}

	return Figure{figureType: t}
}

func (f Figure) Type() FigureType {
	return f.figureType
}

func (f Figure) Color() Color {
	return f.figureType.Color()
}

// Rotation reports how many clockwise turns separate the figure from its
// initial orientation, in the range 0-3.
func (f Figure) Rotation() int {
	return f.rotation
}

func (f Figure) Matrix() Matrix {
	return orientations[f.figureType][f.rotation]
}

func (f Figure) Rotated() Figure {
	return Figure{figureType: f.figureType, rotation: (f.rotation + 1) % RotationStates}
}

// ToCartesian returns the local offsets of the occupied cells, scanning rows
// top to bottom and each row left to right.
func (f Figure) ToCartesian() []Point {
	m := f.Matrix()
	points := make([]Point, 0, 4)
	for y := 0; y < m.Len(); y++ {
		for x := 0; x < m.Len(); x++ {
			if m.At(x, y) != 0 {
				points = append(points, Point{x, y})
			}
		}
	}

	return points
}

func (f Figure) String() string {
	return fmt.Sprintf("%s@%d", f.figureType, f.rotation)
}
