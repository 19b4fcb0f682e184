// Package payload provides the byte-payload abstraction shared by every
// host-facing call, and the codec contracts that convert domain values to
// and from it.
//
// # Data
//
// Data is a buffer of bytes which may be inline or still resident on the
// host. Some bulk data processing functions pass bytes straight from a
// request or response body into another call; Data lets that happen
// without copying the buffer into guest memory:
//
//	func handle(body payload.Data) payload.Data {
//		return body // never materialized; the handle passes through
//	}
//
// IntoBytes materializes the payload, draining a host-resident buffer in
// chunks. It consumes the Data: a second consumption panics, standing in
// for the move semantics the boundary contract requires. Printing a Data
// (or logging it as a zap object) reports only its location and length,
// never forcing materialization.
//
// # Codecs
//
// Encoder and Extractor are the two halves of a codec, each bound to a
// concrete domain type:
//
//	data, err := payload.JSON[Greeting]{Value: g}.EncodePayload()
//	g, err := payload.Extract[payload.JSON[Greeting]](data)
//
// Built-in codecs: Bytes and Text (infallible both ways), Empty
// (zero-length), JSON, CBOR and YAML structural wrappers (fallible both
// ways), and Zstd/LZ4 compressed-at-rest byte payloads. Each codec returns
// its own error type to the immediate caller; nothing here retries, since
// the same value fails the same way on a retry.
package payload
