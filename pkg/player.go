package pkg

import (
	"bufio"
	"log"
	"net"
	"sync"
	"time"
)

const ConnQueueSize = 10

// Player is one connection to the scoreboard server
type Player struct {
	Conn net.Conn
	Out  chan MessageInterface
	Id   int

	idle      time.Duration
	closeOnce sync.Once
}

func NewPlayer(conn net.Conn, id int, idle time.Duration) *Player {
	Out := make(chan MessageInterface, ConnQueueSize)

	p := &Player{
		Conn: conn,
		Out:  Out,
		Id:   id,
		idle: idle,
	}
	return p
}

func (p *Player) extendDeadline() {
	if p.idle > 0 {
		p.Conn.SetReadDeadline(time.Now().Add(p.idle))
	}
}

// HandleRead receives messages, adds the player id, then forwards them to
// the server. It returns when the connection is closed or idles out.
func (p *Player) HandleRead(In chan<- MessageTransport) {
	scanner := bufio.NewScanner(p.Conn)
	p.extendDeadline()
	for scanner.Scan() {
		var messageTransport MessageTransport
		if err := Decode(scanner.Bytes(), &messageTransport); err != nil {
			log.Printf("Player %d sent a malformed message: %s", p.Id, err)
			p.Out <- MessageError{Reason: "malformed message"}
			continue
		}
		messageTransport.PlayerId = p.Id
		In <- messageTransport
		p.extendDeadline()
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Player %d read: %s", p.Id, err)
	}
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		b, err := Wrap(message, p.Id)
		if err != nil {
			log.Printf("Failed to encode: %v Error: %v", message, err)
			continue
		}
		if _, err := p.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v Error: %v", message, err)
		}
	}
}

// Disconnect closes the connection. The read loop ends on its own; the
// write loop ends when the server closes Out.
func (p *Player) Disconnect() {
	p.closeOnce.Do(func() {
		p.Conn.Close()
	})
}
