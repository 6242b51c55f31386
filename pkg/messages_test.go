package pkg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	b, err := Wrap(MessageScore{Name: "ann", Score: 300, Lines: 3, Seconds: 42}, 7)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(b, []byte("\n")))

	var transport MessageTransport
	require.NoError(t, Decode(b, &transport))
	assert.Equal(t, TypeMessageScore, transport.MsgType)
	assert.Equal(t, 7, transport.PlayerId)

	m, err := Unwrap(transport)
	require.NoError(t, err)
	assert.Equal(t, &MessageScore{Name: "ann", Score: 300, Lines: 3, Seconds: 42}, m)
}

func TestUnwrapErrors(t *testing.T) {
	_, err := Unwrap(MessageTransport{MsgType: TypeMessageTransport, Data: []byte("{}")})
	assert.Error(t, err)

	_, err = Unwrap(MessageTransport{MsgType: TypeMessageQuery, Data: []byte("not json")})
	assert.Error(t, err)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "TypeMessageLeaderboard", TypeMessageLeaderboard.String())
	assert.Equal(t, "Unknown MessageType", MessageType(99).String())
}

func TestMessageErrorIsError(t *testing.T) {
	var err error = MessageError{Reason: "nope"}
	assert.EqualError(t, err, "nope")
}
