package payload

import "encoding/json"

// JSON encodes and extracts a value as JSON. Fallible both ways: encode
// fails on non-representable values (channels, cycles, ...), extract fails
// on malformed input. Errors are the encoding/json error types.
type JSON[T any] struct {
	Value T
}

func (j JSON[T]) EncodePayload() (Data, error) {
	b, err := json.Marshal(j.Value)
	if err != nil {
		return Data{}, err
	}
	return FromBytes(b), nil
}

func (j *JSON[T]) ExtractPayload(d Data) error {
	return json.Unmarshal(d.IntoBytes(), &j.Value)
}

// RawJSON carries pre-encoded JSON. Encoding validates the bytes; extract
// accepts whatever the payload holds, deferring validation to the caller.
type RawJSON json.RawMessage

func (r RawJSON) EncodePayload() (Data, error) {
	var probe any
	if err := json.Unmarshal(r, &probe); err != nil {
		return Data{}, err
	}
	return FromBytes(r), nil
}

func (r *RawJSON) ExtractPayload(d Data) error {
	*r = d.IntoBytes()
	return nil
}
