package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune

	a event.Action
}

var keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'z', a: event.ActionRotate},
	{r: 'Z', a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: 'X', a: event.ActionRotate},
	{r: 'k', a: event.ActionRotate},
	{r: 'K', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'r', a: event.ActionRestart},
	{r: 'R', a: event.ActionRestart},
}

// ActionFor returns the game action bound to the key in ev
func ActionFor(ev *tcell.EventKey) event.Action {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if bind.k != 0 {
			if bind.k == k {
				return bind.a
			}
			continue
		}

		if k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}

	return event.ActionUnknown
}

// isQuit reports whether ev should close the client
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
