package pkg

import (
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	ServerPort        = ":1998"
	SshPort           = ":2222"
	MessageQueueSize  = 20
	DefaultQueryLimit = 10
)

// Server accepts scoreboard connections and answers score submissions and
// leaderboard queries
type Server struct {
	Leaderboard *Leaderboard
	IdleTimeout time.Duration
	In          chan MessageTransport

	mu        sync.Mutex
	players   *intmap.Map[int, *Player]
	nextId    int
	listeners []net.Listener

	done     chan struct{}
	stopOnce sync.Once
}

func NewServer(capacity int) *Server {
	s := &Server{
		Leaderboard: NewLeaderboard(capacity),
		IdleTimeout: ServerIdleTimeout,
		In:          make(chan MessageTransport, MessageQueueSize),
		players:     intmap.New[int, *Player](64),
		done:        make(chan struct{}),
	}

	go s.handle()
	return s
}

// Listen starts accepting connections on address and returns the address
// actually bound
func (s *Server) Listen(address string) (net.Addr, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", address, err)
	}

	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()

	log.Printf("Listening at %s", listener.Addr())
	go s.accept(listener)
	return listener.Addr(), nil
}

func (s *Server) accept(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}

			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("Failed to accept: %s", err)
			continue
		}

		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	s.mu.Lock()
	s.nextId++
	p := NewPlayer(conn, s.nextId, s.IdleTimeout)
	s.players.Put(p.Id, p)
	s.mu.Unlock()

	Logf(LogVerbose, "Player %d connected from %s", p.Id, conn.RemoteAddr())

	go p.HandleWrite()
	p.HandleRead(s.In)

	s.removePlayer(p)
	Logf(LogVerbose, "Player %d disconnected", p.Id)
}

func (s *Server) removePlayer(p *Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players.Get(p.Id); !ok {
		return
	}
	s.players.Del(p.Id)
	p.Disconnect()
	close(p.Out)
}

// Players returns the number of connected players
func (s *Server) Players() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.players.Len()
}

// send queues m for the player. Messages to players that are gone or too
// slow are dropped.
func (s *Server) send(playerId int, m MessageInterface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players.Get(playerId)
	if !ok {
		return
	}

	select {
	case p.Out <- m:
	default:
		log.Printf("Player %d queue is full, dropping %s", playerId, m.Type())
	}
}

func (s *Server) handle() {
	for {
		select {
		case <-s.done:
			return
		case t := <-s.In:
			s.send(t.PlayerId, s.process(t))
		}
	}
}

func (s *Server) process(t MessageTransport) MessageInterface {
	m, err := Unwrap(t)
	if err != nil {
		Logf(LogDebug, "Player %d: %s", t.PlayerId, err)
		return MessageError{Reason: err.Error()}
	}

	switch m := m.(type) {
	case *MessageScore:
		if m.Score < 0 || m.Lines < 0 || m.Seconds < 0 {
			return MessageError{Reason: "invalid score"}
		}

		e := Entry{
			Name:    Nickname(m.Name),
			Score:   m.Score,
			Lines:   m.Lines,
			Seconds: m.Seconds,
			At:      time.Now(),
		}
		rank := s.Leaderboard.Add(e)
		log.Printf("%s scored %d (%d lines), rank %d", e.Name, e.Score, e.Lines, rank)

		return MessageLeaderboard{Entries: s.Leaderboard.Top(DefaultQueryLimit), Rank: rank}

	case *MessageQuery:
		limit := m.Limit
		if limit <= 0 {
			limit = DefaultQueryLimit
		}
		return MessageLeaderboard{Entries: s.Leaderboard.Top(limit)}

	default:
		return MessageError{Reason: fmt.Sprintf("unexpected message type %s", t.MsgType)}
	}
}

// StopListening closes every listener and connection
func (s *Server) StopListening() {
	s.stopOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		defer s.mu.Unlock()

		for _, l := range s.listeners {
			l.Close()
		}
		s.players.ForEach(func(id int, p *Player) bool {
			p.Disconnect()
			return true
		})
	})
}
