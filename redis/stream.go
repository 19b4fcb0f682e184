package redis

import (
	"fmt"

	"github.com/momentohq/functions/hostabi"
)

// ReplyStream is a lazy cursor over one reply sequence. Each Next call
// performs exactly one pull against the host; elements arrive in the
// order their commands were submitted.
type ReplyStream struct {
	source hostabi.RedisReplySource
	done   bool
}

func newReplyStream(source hostabi.RedisReplySource) *ReplyStream {
	return &ReplyStream{source: source}
}

// Next pulls the next reply element. It returns false once the sequence
// is exhausted; further calls keep returning false without touching the
// host.
func (s *ReplyStream) Next() (Value, bool) {
	if s.done {
		return nil, false
	}
	reply, ok := s.source.Pull()
	if !ok {
		s.done = true
		s.source = nil
		return nil, false
	}
	return decodeReply(reply), true
}

func decodeReply(r hostabi.RedisReply) Value {
	switch r.Kind {
	case hostabi.RedisNil:
		return Nil{}
	case hostabi.RedisInt:
		return Int(r.Int)
	case hostabi.RedisData:
		return Data(r.Data)
	case hostabi.RedisBulk:
		return Bulk{Stream: newReplyStream(r.Bulk)}
	case hostabi.RedisStatus:
		return Status(r.Status)
	case hostabi.RedisOkay:
		return Okay{}
	default:
		panic(fmt.Sprintf("redis: host returned unknown reply kind %d", r.Kind))
	}
}
