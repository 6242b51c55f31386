package gui

import (
	"fmt"
	"time"
)

// Clock measures play time. It is advanced by the frame loop rather than
// running its own ticker so it stays in step with the engine.
type Clock struct {
	Elapsed time.Duration
	Paused  bool
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d:%02d", int(cl.Elapsed.Minutes()), int(cl.Elapsed.Seconds())%60)
}

func NewClock() *Clock {
	return &Clock{}
}

func (cl *Clock) Advance(d time.Duration) {
	if !cl.Paused {
		cl.Elapsed += d
	}
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Reset() {
	cl.Elapsed = 0
	cl.Paused = false
}
