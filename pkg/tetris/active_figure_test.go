package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveFigureToCartesianShifted(t *testing.T) {
	figure := NewActiveFigure(O, Point{5, 5})

	expected := []Point{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	assert.Equal(t, expected, figure.ToCartesian())
}

func TestActiveFigureColor(t *testing.T) {
	figure := NewActiveFigure(T, Point{0, 0})

	assert.Equal(t, T.Color(), figure.Color())
}

func TestActiveFigureUpdatePosition(t *testing.T) {
	figure := NewActiveFigure(L, Point{0, 0})
	moved := figure.UpdatingPositionByXY(5, 5)

	assert.Equal(t, Point{5, 5}, moved.Position())
	assert.Equal(t, Point{0, 0}, figure.Position(), "original figure was moved")
}

func TestActiveFigureLeftEdge(t *testing.T) {
	figure := NewActiveFigure(L, Point{2, 2})

	assert.Equal(t, 2, figure.LeftEdge())
	assert.Equal(t, 3, figure.Rotated().LeftEdge())
}

func TestActiveFigureRightEdge(t *testing.T) {
	figure := NewActiveFigure(I, Point{2, 2})

	assert.Equal(t, 5, figure.RightEdge())
	assert.Equal(t, 4, figure.Rotated().RightEdge())
}

func TestActiveFigureVerticalEdges(t *testing.T) {
	figure := NewActiveFigure(T, Point{0, 0})

	assert.Equal(t, 0, figure.TopEdge())
	assert.Equal(t, 1, figure.BottomEdge())

	rotated := figure.Rotated().Rotated()
	assert.Equal(t, 1, rotated.TopEdge())
	assert.Equal(t, 2, rotated.BottomEdge())
}

func TestActiveFigureRotatedKeepsAnchor(t *testing.T) {
	figure := NewActiveFigure(J, Point{3, -1})
	rotated := figure.Rotated()

	assert.Equal(t, figure.Position(), rotated.Position())
	assert.Equal(t, 0, figure.Figure().Rotation())
	assert.Equal(t, 1, rotated.Figure().Rotation())
}

func TestActiveFigureNegativeAnchor(t *testing.T) {
	figure := NewActiveFigure(I, Point{0, 0}).Rotated().UpdatingPositionByXY(-2, 0)

	assert.Equal(t, 0, figure.LeftEdge())
	assert.Equal(t, 0, figure.RightEdge())
	for _, p := range figure.ToCartesian() {
		assert.Equal(t, 0, p.X)
	}
}

func TestActiveFigureWallKickTests(t *testing.T) {
	figure := NewActiveFigure(T, Point{0, 0})

	tests := figure.WallKickTests()
	assert.Equal(t, []Point{{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0}}, tests)

	tests[0] = Point{9, 9}
	assert.Equal(t, Point{0, 0}, figure.WallKickTests()[0], "wall kick tests alias internal state")
}
