package pkg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
)

const maxMessageSize = 1 << 20

// SubmitScore sends a finished game to the scoreboard server at address and
// returns the leaderboard it answers with
func SubmitScore(ctx context.Context, address string, score MessageScore) (MessageLeaderboard, error) {
	return request(ctx, address, score)
}

// FetchLeaderboard returns the top limit entries of the scoreboard server at
// address
func FetchLeaderboard(ctx context.Context, address string, limit int) (MessageLeaderboard, error) {
	return request(ctx, address, MessageQuery{Limit: limit})
}

func request(ctx context.Context, address string, m MessageInterface) (MessageLeaderboard, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return MessageLeaderboard{}, fmt.Errorf("connect %s: %w", address, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	b, err := Wrap(m, 0)
	if err != nil {
		return MessageLeaderboard{}, err
	}
	if _, err := conn.Write(b); err != nil {
		return MessageLeaderboard{}, fmt.Errorf("send %s: %w", m.Type(), err)
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 4096), maxMessageSize)
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return MessageLeaderboard{}, fmt.Errorf("receive: %w", err)
	}

	var messageTransport MessageTransport
	if err := Decode(scanner.Bytes(), &messageTransport); err != nil {
		return MessageLeaderboard{}, err
	}
	reply, err := Unwrap(messageTransport)
	if err != nil {
		return MessageLeaderboard{}, err
	}

	switch reply := reply.(type) {
	case *MessageLeaderboard:
		return *reply, nil
	case *MessageError:
		return MessageLeaderboard{}, fmt.Errorf("scoreboard: %w", *reply)
	default:
		return MessageLeaderboard{}, fmt.Errorf("scoreboard: unexpected reply %s", messageTransport.MsgType)
	}
}
