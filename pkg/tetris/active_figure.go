package tetris

import "math"

// wallKickTests are the anchor offsets probed, in order, when rotating.
var wallKickTests = []Point{{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0}}

// ActiveFigure is a figure anchored at a board position. The anchor may lie
// outside the board as long as the occupied cells do not.
type ActiveFigure struct {
	figure   Figure
	position Point
}

func NewActiveFigure(t FigureType, position Point) ActiveFigure {
	return ActiveFigure{figure: NewFigure(t), position: position}
}

func (a ActiveFigure) Figure() Figure {
	return a.figure
}

func (a ActiveFigure) Type() FigureType {
	return a.figure.Type()
}

func (a ActiveFigure) Color() Color {
	return a.figure.Color()
}

func (a ActiveFigure) Position() Point {
	return a.position
}

// ToCartesian returns the board cells covered by the figure.
func (a ActiveFigure) ToCartesian() []Point {
	points := a.figure.ToCartesian()
	for i := range points {
		points[i] = points[i].Add(a.position)
	}

	return points
}

func (a ActiveFigure) LeftEdge() int {
	edge := math.MaxInt32
	for _, p := range a.ToCartesian() {
		if p.X < edge {
			edge = p.X
		}
	}

	return edge
}

func (a ActiveFigure) RightEdge() int {
	edge := math.MinInt32
	for _, p := range a.ToCartesian() {
		if p.X > edge {
			edge = p.X
		}
	}

	return edge
}

func (a ActiveFigure) TopEdge() int {
	edge := math.MaxInt32
	for _, p := range a.ToCartesian() {
		if p.Y < edge {
			edge = p.Y
		}
	}

	return edge
}

func (a ActiveFigure) BottomEdge() int {
	edge := math.MinInt32
	for _, p := range a.ToCartesian() {
		if p.Y > edge {
			edge = p.Y
		}
	}

	return edge
}

func (a ActiveFigure) UpdatingPositionByXY(x int, y int) ActiveFigure {
	return ActiveFigure{figure: a.figure, position: a.position.Add(Point{x, y})}
}

func (a ActiveFigure) Rotated() ActiveFigure {
	return ActiveFigure{figure: a.figure.Rotated(), position: a.position}
}

// WallKickTests returns the anchor offsets tried in order when rotating.
func (a ActiveFigure) WallKickTests() []Point {
	tests := make([]Point, len(wallKickTests))
	copy(tests, wallKickTests)

	return tests
}
