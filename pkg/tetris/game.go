package tetris

import (
	"fmt"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

const (
	MovingPeriod = 0.2 // Seconds
	LinePoints   = 100
)

// Game drives a single falling-block game. It is not safe for concurrent use;
// one caller is expected to call Update every frame and the move methods in
// response to input.
type Game struct {
	board  *Board
	active ActiveFigure

	score       int
	lines       int
	waitingTime float64
	gameOver    bool

	period   float64
	spawn    Point
	selector Selector
	initial  FigureType
	halt     bool
	handler  func(interface{})
}

type Option func(*Game)

// WithSelector sets the policy choosing every spawned figure.
func WithSelector(s Selector) Option {
	return func(g *Game) {
		g.selector = s
	}
}

// WithSpawn sets the anchor new figures are placed at.
func WithSpawn(p Point) Option {
	return func(g *Game) {
		g.spawn = p
	}
}

// WithPeriod sets the gravity period in seconds.
func WithPeriod(period float64) Option {
	if period <= 0 {
		panic(fmt.Sprintf("tetris: invalid gravity period %f", period))
	}

	return func(g *Game) {
		g.period = period
	}
}

// WithInitialFigure sets the type of the first figure instead of asking the
// selector.
func WithInitialFigure(t FigureType) Option {
	return func(g *Game) {
		g.initial = t
	}
}

// WithHaltOnBlockedSpawn stops the game once a new figure cannot be placed.
// Without it the blocked spawn is only reported.
func WithHaltOnBlockedSpawn() Option {
	return func(g *Game) {
		g.halt = true
	}
}

// WithHandler registers a function receiving the events in pkg/event. It is
// called synchronously from the method that caused the event.
func WithHandler(handler func(interface{})) Option {
	return func(g *Game) {
		g.handler = handler
	}
}

func NewGame(size Size, opts ...Option) *Game {
	g := &Game{
		board:    NewBoard(size),
		period:   MovingPeriod,
		selector: FixedSelector(T),
	}

	for _, opt := range opts {
		opt(g)
	}

	t := g.initial
	if t == None {
		t = g.selector.Next()
	}
	g.place(NewActiveFigure(t, g.spawn))

	return g
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Active() ActiveFigure {
	return g.active
}

func (g *Game) Size() Size {
	return g.board.Size()
}

func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of lines cleared so far.
func (g *Game) Lines() int {
	return g.lines
}

// Next returns the type of the figure that will spawn after the active one.
func (g *Game) Next() FigureType {
	return g.selector.Peek()
}

// IsGameOver reports whether a spawned figure was blocked since the last
// restart.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) halted() bool {
	return g.halt && g.gameOver
}

// Restart clears the board and score and spawns a new figure.
func (g *Game) Restart() {
	g.board = NewBoard(g.board.Size())
	g.score = 0
	g.lines = 0
	g.waitingTime = 0
	g.gameOver = false

	g.place(NewActiveFigure(g.selector.Next(), g.spawn))
}

// Update advances the gravity timer by deltaTime seconds. Once the period is
// exceeded the active figure falls one row or locks.
func (g *Game) Update(deltaTime float64) {
	if g.halted() {
		return
	}

	g.waitingTime += deltaTime
	if g.waitingTime > g.period {
		g.updateGame()
		g.waitingTime = 0
	}
}

func (g *Game) MoveLeft() {
	g.tryMove(-1, 0)
}

func (g *Game) MoveRight() {
	g.tryMove(1, 0)
}

// MoveDown moves the active figure one row down. It never locks the figure.
func (g *Game) MoveDown() {
	g.tryMove(0, 1)
}

// Rotate turns the active figure clockwise, trying each wall kick offset in
// order. If no offset fits the figure is left unchanged.
func (g *Game) Rotate() {
	if g.halted() {
		return
	}

	rotated := g.active.Rotated()
	for _, kick := range g.active.WallKickTests() {
		candidate := rotated.UpdatingPositionByXY(kick.X, kick.Y)
		if g.isValid(candidate) {
			g.active = candidate
			return
		}
	}
}

// HardDrop moves the active figure down as far as it goes and locks it.
func (g *Game) HardDrop() {
	if g.halted() || !g.isValid(g.active) {
		return
	}

	for {
		down := g.activeMovedDown()
		if !g.isValid(down) {
			break
		}

		g.active = down
	}

	g.lock()
	g.waitingTime = 0
}

// Ghost returns the cells the active figure would occupy after a hard drop.
func (g *Game) Ghost() []Point {
	landed := g.active
	if !g.isValid(landed) {
		return landed.ToCartesian()
	}

	for {
		down := landed.UpdatingPositionByXY(0, 1)
		if !g.isValid(down) {
			return landed.ToCartesian()
		}

		landed = down
	}
}

func (g *Game) ProcessAction(a event.Action) {
	switch a {
	case event.ActionRotate:
		g.Rotate()
	case event.ActionMoveLeft:
		g.MoveLeft()
	case event.ActionMoveRight:
		g.MoveRight()
	case event.ActionSoftDrop:
		g.MoveDown()
	case event.ActionHardDrop:
		g.HardDrop()
	case event.ActionRestart:
		g.Restart()
	}
}

// Draw returns the locked cells row by row followed by the cells of the
// active figure.
func (g *Game) Draw() []Block {
	blocks := g.drawBoard()

	return append(blocks, g.drawActiveFigure()...)
}

func (g *Game) drawBoard() []Block {
	var blocks []Block
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if t := g.board.FigureAt(x, y); t != None {
				blocks = append(blocks, Block{X: x, Y: y, Width: 1, Height: 1, Color: t.Color()})
			}
		}
	}

	return blocks
}

func (g *Game) drawActiveFigure() []Block {
	points := g.active.ToCartesian()
	blocks := make([]Block, len(points))
	for i, p := range points {
		blocks[i] = Block{X: p.X, Y: p.Y, Width: 1, Height: 1, Color: g.active.Color()}
	}

	return blocks
}

func (g *Game) updateGame() {
	down := g.activeMovedDown()
	if g.isValid(down) {
		g.active = down
		return
	}

	// A figure that already overlaps the board, such as one spawned onto
	// locked cells, is left in place.
	if !g.isValid(g.active) {
		return
	}

	g.lock()
}

func (g *Game) tryMove(x int, y int) {
	if g.halted() {
		return
	}

	moved := g.active.UpdatingPositionByXY(x, y)
	if g.isValid(moved) {
		g.active = moved
	}
}

func (g *Game) activeMovedDown() ActiveFigure {
	return g.active.UpdatingPositionByXY(0, 1)
}

// isValid reports whether every cell of a is on the board and free.
func (g *Game) isValid(a ActiveFigure) bool {
	for _, p := range a.ToCartesian() {
		if !g.board.InBounds(p) || g.board.Contains(p) {
			return false
		}
	}

	return true
}

func (g *Game) isAtTheBottom() bool {
	return g.active.BottomEdge() == g.board.Height()-1
}

// willCollideWithBlock reports whether moving the active figure down would
// overlap a locked cell. Board edges are not considered.
func (g *Game) willCollideWithBlock() bool {
	for _, p := range g.activeMovedDown().ToCartesian() {
		if g.board.Contains(p) {
			return true
		}
	}

	return false
}

func (g *Game) lock() {
	points := g.active.ToCartesian()
	g.board = g.board.Placing(points, g.active.Type())
	g.emit(event.LockEvent{Figure: g.active.Type().String(), Bottom: g.active.BottomEdge()})

	if rows := g.board.CompletedLines(); len(rows) > 0 {
		g.board = g.board.RemovingLines(rows)

		points := LinePoints * len(rows)
		g.score += points
		g.lines += len(rows)

		g.emit(event.LinesClearedEvent{Lines: len(rows), Rows: rows, Score: points})
	}

	g.place(NewActiveFigure(g.selector.Next(), g.spawn))
}

func (g *Game) place(a ActiveFigure) {
	g.active = a

	if !g.isValid(a) {
		g.gameOver = true
		g.emit(event.GameOverEvent{Score: g.score, Lines: g.lines})
		return
	}

	g.emit(event.SpawnEvent{Figure: a.Type().String()})
}

func (g *Game) emit(ev interface{}) {
	if g.handler == nil {
		return
	}

	g.handler(ev)
}
