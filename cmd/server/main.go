package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/ssh"
)

var (
	done = make(chan bool)
)

func main() {
	listenTCP := flag.String("listen-tcp", pkg.ServerPort, "address the scoreboard listens on")
	listenSSH := flag.String("listen-ssh", "", "address the ssh server listens on, empty to disable")
	tetrisBinary := flag.String("tetris", "tetris", "path to the tetris client run for ssh sessions")
	hostKey := flag.String("host-key", "", "ssh host key file, defaults to ~/.ssh/id_rsa")
	capacity := flag.Int("capacity", pkg.DefaultLeaderboardSize, "number of leaderboard entries kept")
	logPath := flag.String("log", "", "path to log file, empty logs to stderr")
	debug := flag.Bool("debug", false, "log every connection")
	flag.Parse()

	if *logPath != "" {
		if err := pkg.InitLog(*logPath, "SERVER: "); err != nil {
			log.Fatal(err)
		}
	} else {
		log.SetPrefix("SERVER: ")
	}
	if *debug {
		pkg.SetLogLevel(pkg.LogVerbose)
	}

	s := pkg.NewServer(*capacity)
	addr, err := s.Listen(*listenTCP)
	if err != nil {
		log.Fatal(err)
	}
	color.Green("Scoreboard listening at %s", addr)

	var sshServer *ssh.SSHServer
	if *listenSSH != "" {
		sshServer = &ssh.SSHServer{
			ListenAddress: *listenSSH,
			TetrisBinary:  *tetrisBinary,
			ScoreServer:   addr.String(),
			HostKeyFile:   *hostKey,
		}
		if err := sshServer.Host(); err != nil {
			log.Fatal(err)
		}
		color.Green("SSH listening at %s", *listenSSH)
	}

	sigc := make(chan os.Signal, 1)
	// Wait for teminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		sig := <-sigc

		if sshServer != nil {
			sshServer.Shutdown(sig.String())
		}
		s.StopListening()
		done <- true
	}()

	<-done
	color.Yellow("Server stopped")
}
