package pkg

import (
	"encoding/json"
	"fmt"
)

type MessageType int

const (
	TypeMessageTransport MessageType = iota
	TypeMessageScore
	TypeMessageQuery
	TypeMessageLeaderboard
	TypeMessageError
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageScore:
		return "TypeMessageScore"
	case TypeMessageQuery:
		return "TypeMessageQuery"
	case TypeMessageLeaderboard:
		return "TypeMessageLeaderboard"
	case TypeMessageError:
		return "TypeMessageError"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

// Encode marshals a message payload
func Encode(m interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// Decode unmarshals data into m
func Decode(data []byte, m interface{}) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Wrap encodes m and puts it in a transport envelope terminated by a newline,
// ready to be written to a connection
func Wrap(m MessageInterface, playerId int) ([]byte, error) {
	data, err := Encode(m)
	if err != nil {
		return nil, err
	}

	b, err := Encode(MessageTransport{MsgType: m.Type(), Data: data, PlayerId: playerId})
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Unwrap decodes the payload of a transport into the matching message type
func Unwrap(t MessageTransport) (MessageInterface, error) {
	var m MessageInterface
	switch t.MsgType {
	case TypeMessageScore:
		m = &MessageScore{}
	case TypeMessageQuery:
		m = &MessageQuery{}
	case TypeMessageLeaderboard:
		m = &MessageLeaderboard{}
	case TypeMessageError:
		m = &MessageError{}
	default:
		return nil, fmt.Errorf("unwrap: unexpected message type %s", t.MsgType)
	}

	if err := Decode(t.Data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Message types

// MessageTransport is the envelope of every line on the wire
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

// MessageScore submits the result of a finished game
type MessageScore struct {
	Name    string
	Score   int
	Lines   int
	Seconds int
}

func (m MessageScore) Type() MessageType {
	return TypeMessageScore
}

// MessageQuery asks for the top entries of the leaderboard
type MessageQuery struct {
	Limit int
}

func (m MessageQuery) Type() MessageType {
	return TypeMessageQuery
}

// MessageLeaderboard answers a query or a score. Rank is the 1-based
// position of a submitted score, or 0 when it did not make the board.
type MessageLeaderboard struct {
	Entries []Entry
	Rank    int
}

func (m MessageLeaderboard) Type() MessageType {
	return TypeMessageLeaderboard
}

type MessageError struct {
	Reason string
}

func (m MessageError) Type() MessageType {
	return TypeMessageError
}

func (m MessageError) Error() string {
	return m.Reason
}
