//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"path"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// SSHServer lets players connect with any ssh client. Every interactive
// session runs its own tetris process inside a pty.
type SSHServer struct {
	ListenAddress string
	TetrisBinary  string
	ScoreServer   string
	HostKeyFile   string
	IdleTimeout   time.Duration

	server *ssh.Server
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("Failed to resize pty: %s", err)
	}
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetris: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.TetrisBinary, s.commandArgs(sshSession.User())...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		log.Printf("Failed to start %s: %s", s.TetrisBinary, err)
		io.WriteString(sshSession, "failed to initialize pseudo-terminal\n")
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	log.Printf("SSH session for %s from %s", sshSession.User(), sshSession.RemoteAddr())
	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()
}

// Host starts serving ssh sessions in the background
func (s *SSHServer) Host() error {
	if s.ListenAddress == "" {
		return fmt.Errorf("ssh: ListenAddress must be specified")
	}
	if s.TetrisBinary == "" {
		return fmt.Errorf("ssh: TetrisBinary must be specified")
	}

	idle := s.IdleTimeout
	if idle == 0 {
		idle = ServerIdleTimeout
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: idle,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	hostKey := s.HostKeyFile
	if hostKey == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("ssh: %w", err)
		}
		hostKey = path.Join(homeDir, ".ssh", "id_rsa")
	}

	if _, err := os.Stat(hostKey); err == nil {
		if err := s.server.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return fmt.Errorf("ssh: host key %s: %w", hostKey, err)
		}
	} else {
		log.Printf("Host key %s not found, using a generated key", hostKey)
	}

	listener, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return fmt.Errorf("ssh: listen %s: %w", s.ListenAddress, err)
	}

	log.Printf("SSH listening at %s", listener.Addr())
	go func() {
		if err := s.server.Serve(listener); err != nil && err != ssh.ErrServerClosed {
			log.Printf("SSH server stopped: %s", err)
		}
	}()
	return nil
}

func (s *SSHServer) Shutdown(reason string) {
	if s.server == nil {
		return
	}

	log.Printf("Stopping SSH server: %s", reason)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.server.Close()
	}
}
