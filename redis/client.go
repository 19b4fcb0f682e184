package redis

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/momentohq/functions/errors"
	"github.com/momentohq/functions/hostabi"
	"github.com/momentohq/functions/payload"
)

// Client is a handle to one host-side connection. The host keeps the
// connection alive across invocations, so Connect is cheap after the
// first call with a given connection string.
type Client struct {
	conn hostabi.RedisConn
}

// Connect obtains a client for the given connection string.
func Connect(connectionString string) *Client {
	return &Client{conn: hostabi.RedisAPI().Connect(connectionString)}
}

// Pipe submits the commands as one batch and returns a lazy cursor over
// their replies, one per command, in submission order.
func (c *Client) Pipe(commands ...Command) (*ReplyStream, error) {
	batch := make([]hostabi.RedisCommand, len(commands))
	for i, cmd := range commands {
		batch[i] = hostabi.RedisCommand{Name: cmd.Name, Args: cmd.Args}
	}
	source, err := c.conn.Pipe(batch)
	if err != nil {
		return nil, err
	}
	Logger().Debug("pipeline submitted", zap.Int("commands", len(commands)))
	return newReplyStream(source), nil
}

// StatusError reports a command that came back with a status-line reply
// where this package's convenience wrappers expected something else. The
// protocol does not distinguish benign statuses from errors, so the raw
// status text is carried verbatim.
type StatusError struct {
	Op     string
	Status string
}

func (e *StatusError) Error() string {
	return e.Op + ": status reply: " + e.Status
}

// UnexpectedReplyError reports a reply shape a convenience wrapper has no
// mapping for, e.g. a bulk reply to a plain GET.
type UnexpectedReplyError struct {
	Op    string
	Reply Value
}

func (e *UnexpectedReplyError) Error() string {
	return e.Op + ": unexpected reply " + e.Reply.String()
}

// Get fetches key and extracts the value with T's codec. The second
// return is false on a miss. Integer replies are extracted from their
// decimal representation.
func Get[T any, P interface {
	*T
	payload.Extractor
}](c *Client, key []byte) (T, bool, error) {
	const op = "redis.get"
	var zero T
	stream, err := c.Pipe(GetCommand(key))
	if err != nil {
		return zero, false, err
	}
	reply, ok := stream.Next()
	if !ok {
		return zero, false, errors.MalformedReply(op, "pipeline returned no reply")
	}
	switch v := reply.(type) {
	case Nil:
		return zero, false, nil
	case Data:
		value, err := payload.Extract[T, P](payload.FromBytes(v))
		if err != nil {
			return zero, false, err
		}
		return value, true, nil
	case Int:
		value, err := payload.Extract[T, P](payload.FromString(strconv.FormatInt(int64(v), 10)))
		if err != nil {
			return zero, false, err
		}
		return value, true, nil
	case Status:
		return zero, false, &StatusError{Op: op, Status: string(v)}
	default:
		return zero, false, &UnexpectedReplyError{Op: op, Reply: reply}
	}
}

// Set stores value under key unconditionally. For conditional sets, build
// the command with NewSet and submit it through Pipe.
func (c *Client) Set(key []byte, value payload.Encoder) error {
	const op = "redis.set"
	cmd, err := NewSet(key, value).Build()
	if err != nil {
		return err
	}
	stream, err := c.Pipe(cmd)
	if err != nil {
		return err
	}
	reply, ok := stream.Next()
	if !ok {
		return errors.MalformedReply(op, "pipeline returned no reply")
	}
	switch v := reply.(type) {
	case Okay:
		return nil
	case Status:
		return &StatusError{Op: op, Status: string(v)}
	default:
		return &UnexpectedReplyError{Op: op, Reply: reply}
	}
}

// Del removes key. Deleting a missing key is not an error.
func (c *Client) Del(key []byte) error {
	const op = "redis.del"
	stream, err := c.Pipe(DelCommand(key))
	if err != nil {
		return err
	}
	reply, ok := stream.Next()
	if !ok {
		return errors.MalformedReply(op, "pipeline returned no reply")
	}
	switch v := reply.(type) {
	case Int:
		Logger().Debug("del", zap.Int64("removed", int64(v)))
		return nil
	case Status:
		return &StatusError{Op: op, Status: string(v)}
	default:
		return &UnexpectedReplyError{Op: op, Reply: reply}
	}
}
