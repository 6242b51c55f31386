package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

const (
	// Every engine cell is drawn two columns wide to make it square
	cellWidth = 2
	// Columns between the right border and the side panel
	panelGap = 3

	blockRune = '█'
	ghostRune = '▓'
)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// BoardArea returns the number of terminal columns and rows taken by a
// board of the given size including its border
func BoardArea(size tetris.Size) (int, int) {
	return size.Width*cellWidth + 2, size.Height + 2
}

// Area returns the columns and rows needed by Render
func Area(size tetris.Size) (int, int) {
	w, h := BoardArea(size)
	return w + panelGap + 16, h + 2
}

// drawBorder draws a box whose inside starts at x+1, y+1
func drawBorder(s tcell.Screen, x, y, w, h int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Border).Background(t.Background)

	drawRune(s, x, y, style, '┏')
	drawRune(s, x+w-1, y, style, '┓')
	drawRune(s, x, y+h-1, style, '┗')
	drawRune(s, x+w-1, y+h-1, style, '┛')
	for i := x + 1; i < x+w-1; i++ {
		drawRune(s, i, y, style, '━')
		drawRune(s, i, y+h-1, style, '━')
	}
	for j := y + 1; j < y+h-1; j++ {
		drawRune(s, x, j, style, '┃')
		drawRune(s, x+w-1, j, style, '┃')
	}
}

// drawCell draws one engine cell at board coordinates p
func drawCell(s tcell.Screen, x, y int, p tetris.Point, r rune, fg tcell.Color, t Theme) {
	style := tcell.StyleDefault.Foreground(fg).Background(t.Background)
	col := x + 1 + p.X*cellWidth
	row := y + 1 + p.Y
	for i := 0; i < cellWidth; i++ {
		drawRune(s, col+i, row, style, r)
	}
}

// drawBoard draws the border, the empty well, the locked cells, the ghost
// and the active figure in that order
func drawBoard(s tcell.Screen, x, y int, gs *GameState) {
	g := gs.Game
	size := g.Size()
	w, h := BoardArea(size)
	drawBorder(s, x, y, w, h, gs.Theme)

	empty := tcell.StyleDefault.Background(gs.Theme.Background)
	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width*cellWidth; col++ {
			drawRune(s, x+1+col, y+1+row, empty, ' ')
		}
	}

	board := g.Board()
	if gs.Ghost && !g.IsGameOver() {
		c := ghostColor(g.Active().Color(), gs.Theme)
		for _, p := range g.Ghost() {
			if board.InBounds(p) {
				drawCell(s, x, y, p, ghostRune, c, gs.Theme)
			}
		}
	}

	for _, b := range g.Draw() {
		p := b.Position()
		// The active figure may still be partly above the well
		if !board.InBounds(p) {
			continue
		}
		drawCell(s, x, y, p, blockRune, figureColor(b.Color), gs.Theme)
	}
}

// drawPanel displays the player, score, lines and clock
func drawPanel(s tcell.Screen, x, y int, gs *GameState) {
	labelStyle := tcell.StyleDefault.Foreground(gs.Theme.Label)
	valueStyle := tcell.StyleDefault.Foreground(gs.Theme.Value)

	drawText(s, x, y, tcell.StyleDefault.Foreground(gs.Theme.Player), gs.Player)

	drawText(s, x, y+2, labelStyle, "Score")
	drawText(s, x, y+3, valueStyle, fmt.Sprintf("%-10d", gs.Game.Score()))

	drawText(s, x, y+5, labelStyle, "Lines")
	drawText(s, x, y+6, valueStyle, fmt.Sprintf("%-10d", gs.Game.Lines()))

	drawText(s, x, y+8, labelStyle, "Time")
	if gs.Clock != nil {
		drawText(s, x, y+9, tcell.StyleDefault.Foreground(gs.Theme.Clock), fmt.Sprintf("%-10s", gs.Clock))
	}
}

// DrawMsgLabel displays the current message below the board
func DrawMsgLabel(s tcell.Screen, x, y int, msg string, t Theme) {
	drawText(s, x, y, tcell.StyleDefault.Foreground(t.Msg), msg)
}

// Render draws the game with its top left corner at x, y. It does not call
// Show so it can be used from a tview draw func.
func Render(s tcell.Screen, x, y int, gs *GameState) {
	size := gs.Game.Size()
	w, h := BoardArea(size)

	drawBoard(s, x, y, gs)
	drawPanel(s, x+w+panelGap, y+1, gs)

	if gs.Game.IsGameOver() {
		label := " GAME OVER "
		style := tcell.StyleDefault.Background(gs.Theme.GameOver).Foreground(tcell.ColorWhite)
		lx := x + (w-len(label))/2
		if lx < x {
			lx = x
		}
		drawText(s, lx, y+h/2, style, label)
	}

	if gs.Msg != "" {
		DrawMsgLabel(s, x, y+h, gs.Msg, gs.Theme)
	}
}
