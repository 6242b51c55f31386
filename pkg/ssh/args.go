package ssh

import (
	"time"

	"github.com/qnkhuat/tetristerm/pkg"
)

const ServerIdleTimeout = 5 * time.Minute

// commandArgs builds the arguments of the game process for an ssh user
func (s *SSHServer) commandArgs(user string) []string {
	args := []string{"-nick", pkg.Nickname(user)}
	if s.ScoreServer != "" {
		args = append(args, "-score-server", s.ScoreServer)
	}

	return args
}
