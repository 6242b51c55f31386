package gui

import (
	"testing"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(size tetris.Size) *Client {
	return NewClient(Config{
		Size:   size,
		Theme:  ThemeBasic,
		Player: "tester",
	})
}

func TestClientProcess(t *testing.T) {
	cl := newTestClient(tetris.Size{Height: 20, Width: 10})
	g := cl.State.Game

	cl.Process(event.ActionMoveRight)
	assert.Equal(t, tetris.Point{X: 1, Y: 0}, g.Active().Position())

	cl.Process(event.ActionSoftDrop)
	assert.Equal(t, tetris.Point{X: 1, Y: 1}, g.Active().Position())
}

func TestClientUpdate(t *testing.T) {
	cl := newTestClient(tetris.Size{Height: 20, Width: 10})

	cl.Update(250 * time.Millisecond)

	assert.Equal(t, tetris.Point{X: 0, Y: 1}, cl.State.Game.Active().Position())
	assert.Equal(t, 250*time.Millisecond, cl.State.Clock.Elapsed)
}

func TestClientGameOver(t *testing.T) {
	cl := newTestClient(tetris.Size{Height: 2, Width: 3})

	cl.Update(250 * time.Millisecond)
	require.True(t, cl.State.Game.IsGameOver())
	assert.True(t, cl.State.Clock.Paused)
	assert.Contains(t, cl.State.Msg, "Game over, 100 points")

	active := cl.State.Game.Active()
	cl.Process(event.ActionMoveLeft)
	cl.Update(time.Second)
	assert.Equal(t, active, cl.State.Game.Active())
	assert.Equal(t, time.Duration(0), cl.State.Clock.Elapsed)

	cl.Process(event.ActionRestart)
	assert.False(t, cl.State.Game.IsGameOver())
	assert.False(t, cl.State.Clock.Paused)
	assert.Empty(t, cl.State.Msg)
	assert.Equal(t, 0, cl.State.Game.Score())
}
