package event

type Event struct {
	Message string
}

// LockEvent is sent when the active figure is written into the board.
type LockEvent struct {
	Event
	Figure string
	Bottom int
}

type LinesClearedEvent struct {
	Event
	Lines int
	Rows  []int
	Score int
}

type SpawnEvent struct {
	Event
	Figure string
}

// GameOverEvent is sent when a new figure cannot be placed at its spawn
// position.
type GameOverEvent struct {
	Event
	Score int
	Lines int
}
