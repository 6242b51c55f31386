package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixRotated(t *testing.T) {
	m := NewMatrix([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	expected := NewMatrix([][]uint8{
		{7, 4, 1},
		{8, 5, 2},
		{9, 6, 3},
	})

	assert.True(t, m.Rotated().Equal(expected), "got %s", m.Rotated())
}

func TestMatrixRotationCycle(t *testing.T) {
	for _, ft := range AllFigureTypes {
		t.Run(ft.String(), func(t *testing.T) {
			original := ft.InitialMatrix()

			m := original.Rotated()
			if ft != O {
				assert.False(t, m.Equal(original), "single rotation of %s matches the original", ft)
			}

			m = m.Rotated().Rotated().Rotated()
			assert.True(t, m.Equal(original), "expected %s, got %s", original, m)
		})
	}
}

func TestMatrixReplaced(t *testing.T) {
	m := NewMatrix([][]uint8{
		{0, 0},
		{0, 0},
	})

	n := m.Replaced(1, 0, 1)

	assert.Equal(t, uint8(1), n.At(1, 0))
	assert.Equal(t, uint8(0), m.At(1, 0), "replaced modified the original matrix")
	assert.Equal(t, uint8(0), n.At(0, 1))
}

func TestNewMatrixCopiesRows(t *testing.T) {
	rows := [][]uint8{{1, 0}, {0, 1}}
	m := NewMatrix(rows)

	rows[0][0] = 0

	assert.Equal(t, uint8(1), m.At(0, 0))
}

func TestMatrixPreconditions(t *testing.T) {
	require.Panics(t, func() { NewMatrix(nil) })
	require.Panics(t, func() { NewMatrix([][]uint8{{1, 1}, {1}}) })
	require.Panics(t, func() { NewMatrix([][]uint8{{1, 1, 1}, {1, 1, 1}}) })

	m := NewMatrix([][]uint8{{1, 0}, {0, 1}})
	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.At(0, -1) })
	require.Panics(t, func() { m.Replaced(-1, 0, 1) })
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "010/111/000", T.InitialMatrix().String())
}
