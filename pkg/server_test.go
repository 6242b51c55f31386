package pkg

import (
	"bufio"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*Server, string) {
	s := NewServer(10)
	addr, err := s.Listen("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(s.StopListening)

	return s, addr.String()
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestSubmitScore(t *testing.T) {
	_, addr := startServer(t)
	ctx := testContext(t)

	lb, err := SubmitScore(ctx, addr, MessageScore{Name: "ann", Score: 200, Lines: 2, Seconds: 30})
	require.NoError(t, err)
	assert.Equal(t, 1, lb.Rank)
	require.Len(t, lb.Entries, 1)
	assert.Equal(t, "ann", lb.Entries[0].Name)

	lb, err = SubmitScore(ctx, addr, MessageScore{Name: "bob", Score: 100, Lines: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, lb.Rank)

	lb, err = FetchLeaderboard(ctx, addr, 1)
	require.NoError(t, err)
	require.Len(t, lb.Entries, 1)
	assert.Equal(t, "ann", lb.Entries[0].Name)
	assert.Equal(t, 200, lb.Entries[0].Score)
	assert.Equal(t, 0, lb.Rank)
}

func TestSubmitInvalidScore(t *testing.T) {
	s, addr := startServer(t)

	_, err := SubmitScore(testContext(t), addr, MessageScore{Name: "cheat", Score: -1})
	assert.Error(t, err)
	assert.Equal(t, 0, s.Leaderboard.Len())
}

func TestServerRejectsMalformedLine(t *testing.T) {
	_, addr := startServer(t)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	_, err = conn.Write([]byte("garbage\n"))
	require.NoError(t, err)

	scanner := bufio.NewScanner(conn)
	require.True(t, scanner.Scan())

	var transport MessageTransport
	require.NoError(t, Decode(scanner.Bytes(), &transport))
	assert.Equal(t, TypeMessageError, transport.MsgType)
}

func TestServerDropsDisconnectedPlayers(t *testing.T) {
	s, addr := startServer(t)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return s.Players() == 1 }, 5*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return s.Players() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestSubmitScoreUnreachable(t *testing.T) {
	s, addr := startServer(t)
	s.StopListening()

	_, err := SubmitScore(testContext(t), addr, MessageScore{Name: "ann", Score: 1})
	assert.Error(t, err)
}
