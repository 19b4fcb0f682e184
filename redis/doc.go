// Package redis is the guest client for the host's redis/valkey
// capability. The host owns the connection (kept alive across invocations
// for reuse) and all wire-level parsing; this package submits batched
// commands and decodes the host's reply sequence into a walkable value
// tree.
//
// # Reply decoding
//
// Pipe returns a ReplyStream: a pull-based cursor delivering exactly one
// Value per Next call, in strict submission order. Values are a tagged
// union (Nil, Int, Data, Bulk, Status, Okay). Bulk values wrap a further
// ReplyStream over the host's nested data; nested elements are not decoded
// until that stream is itself iterated, so a caller that needs only part
// of a large reply (a search command returning field/value pairs per
// result, say) never pays for the rest.
//
// Exhaustion is terminal and idempotent at every nesting level: pulling
// past the end yields nothing and raises no error.
//
// # Status and Okay
//
// The adapted protocol uses one reply shape for both benign statuses and
// error strings. The decoder preserves that ambiguity: Status and Okay are
// value shapes, not verdicts. Disambiguation is left to the caller, who
// knows which command produced which reply.
//
//	stream, err := client.Pipe(
//		redis.GetCommand([]byte("my_key")),
//		redis.NewCommand("FT.SEARCH").StringArg("my_index").StringArg("*").MustBuild(),
//	)
package redis
