package gui

import (
	"github.com/qnkhuat/tetristerm/pkg/tetris"
)

// GameState encapsulates everything needed to render a game
type GameState struct {
	Game   *tetris.Game // Engine
	Theme  Theme        // Theme
	Clock  *Clock       // Play clock
	Player string       // Nickname
	Msg    string       // Status line
	Ghost  bool         // Show where the active figure lands
}

func NewGameState(g *tetris.Game, t Theme, player string) *GameState {
	return &GameState{
		Game:   g,
		Theme:  t,
		Clock:  NewClock(),
		Player: player,
		Ghost:  true,
	}
}
