package ssh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandArgs(t *testing.T) {
	s := &SSHServer{}
	assert.Equal(t, []string{"-nick", "alice"}, s.commandArgs("alice"))

	s.ScoreServer = "localhost:1998"
	assert.Equal(t, []string{"-nick", "bob", "-score-server", "localhost:1998"}, s.commandArgs("b o b"))
}
