package gui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	cl := NewClock()
	assert.Equal(t, "0:00", cl.String())

	cl.Advance(61 * time.Second)
	assert.Equal(t, "1:01", cl.String())

	cl.Pause()
	cl.Advance(time.Minute)
	assert.Equal(t, "1:01", cl.String())

	cl.Reset()
	assert.False(t, cl.Paused)
	assert.Equal(t, time.Duration(0), cl.Elapsed)

	cl.Advance(10*time.Minute + 5*time.Second)
	assert.Equal(t, "10:05", cl.String())
}
