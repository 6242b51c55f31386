//go:build windows
// +build windows

package ssh

import (
	"errors"
	"time"
)

// SSH server is unsupported on Windows

type SSHServer struct {
	ListenAddress string
	TetrisBinary  string
	ScoreServer   string
	HostKeyFile   string
	IdleTimeout   time.Duration
}

func (s *SSHServer) Host() error {
	return errors.New("ssh: not supported on windows")
}

func (s *SSHServer) Shutdown(reason string) {
}
