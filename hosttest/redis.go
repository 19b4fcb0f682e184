package hosttest

import (
	"github.com/momentohq/functions/hostabi"
)

// Redis scripts one reply sequence per pipeline and records submitted
// batches.
type Redis struct {
	// Scripts are consumed one per Pipe call, in order.
	Scripts [][]hostabi.RedisReply
	Err     error

	ConnectionStrings []string
	Batches           [][]hostabi.RedisCommand
}

// Script appends a reply sequence for the next pipeline.
func (r *Redis) Script(replies ...hostabi.RedisReply) *Redis {
	r.Scripts = append(r.Scripts, replies)
	return r
}

func (r *Redis) Connect(connectionString string) hostabi.RedisConn {
	r.ConnectionStrings = append(r.ConnectionStrings, connectionString)
	return &redisConn{host: r}
}

type redisConn struct {
	host *Redis
}

func (c *redisConn) Pipe(commands []hostabi.RedisCommand) (hostabi.RedisReplySource, error) {
	c.host.Batches = append(c.host.Batches, commands)
	if c.host.Err != nil {
		return nil, c.host.Err
	}
	var replies []hostabi.RedisReply
	if len(c.host.Scripts) > 0 {
		replies = c.host.Scripts[0]
		c.host.Scripts = c.host.Scripts[1:]
	}
	return &ReplySource{Replies: replies}, nil
}

// ReplySource replays scripted replies and counts pulls. Use it directly
// as the Bulk source of a scripted reply to test nested sequences.
type ReplySource struct {
	Replies []hostabi.RedisReply
	Pulls   int
}

func (s *ReplySource) Pull() (hostabi.RedisReply, bool) {
	s.Pulls++
	if len(s.Replies) == 0 {
		return hostabi.RedisReply{}, false
	}
	reply := s.Replies[0]
	s.Replies = s.Replies[1:]
	return reply, true
}
