package tetris

import (
	"fmt"
	"strings"
)

// Matrix is an immutable square grid of cell markers. A non-zero value marks
// an occupied cell.
type Matrix struct {
	rows [][]uint8
}

// NewMatrix copies rows into a new Matrix. It panics if rows is empty or not
// square.
func NewMatrix(rows [][]uint8) Matrix {
	n := len(rows)
	if n == 0 {
		panic("tetris: empty matrix")
	}

	data := make([][]uint8, n)
	for y, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("tetris: matrix row %d has %d cells, want %d", y, len(row), n))
		}

		data[y] = make([]uint8, n)
		copy(data[y], row)
	}

	return Matrix{rows: data}
}

func (m Matrix) Len() int {
	return len(m.rows)
}

// Rotated returns the matrix turned 90 degrees clockwise.
func (m Matrix) Rotated() Matrix {
	n := len(m.rows)
	data := make([][]uint8, n)
	for i := 0; i < n; i++ {
		data[i] = make([]uint8, n)
		for j := 0; j < n; j++ {
			data[i][j] = m.rows[(n-1)-j][i]
		}
	}

	return Matrix{rows: data}
}

func (m Matrix) At(x int, y int) uint8 {
	m.check(x, y)

	return m.rows[y][x]
}

// Replaced returns a copy of the matrix with the cell at x, y set to v.
func (m Matrix) Replaced(x int, y int, v uint8) Matrix {
	m.check(x, y)

	n := NewMatrix(m.rows)
	n.rows[y][x] = v

	return n
}

func (m Matrix) Equal(other Matrix) bool {
	if len(m.rows) != len(other.rows) {
		return false
	}

	for y := range m.rows {
		for x := range m.rows[y] {
			if m.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}

	return true
}

func (m Matrix) String() string {
	var b strings.Builder
	for y, row := range m.rows {
		if y > 0 {
			b.WriteRune('/')
		}

		for _, v := range row {
			if v != 0 {
				b.WriteRune('1')
			} else {
				b.WriteRune('0')
			}
		}
	}

	return b.String()
}

func (m Matrix) check(x int, y int) {
	n := len(m.rows)
	if x < 0 || x >= n || y < 0 || y >= n {
		panic(fmt.Sprintf("tetris: matrix point (%d,%d) out of bounds (%dx%d)", x, y, n, n))
	}
}
