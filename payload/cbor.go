package payload

import "github.com/fxamacker/cbor/v2"

// cborEnc uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The same
// logical value always produces identical bytes, so CBOR payloads are safe
// to use as cache keys or dedup inputs.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR; unknown fields are ignored for forward
// compatibility.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("payload: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("payload: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR encodes and extracts a value as deterministic CBOR. Fallible both
// ways; errors are the fxamacker/cbor error types.
type CBOR[T any] struct {
	Value T
}

func (c CBOR[T]) EncodePayload() (Data, error) {
	b, err := cborEnc.Marshal(c.Value)
	if err != nil {
		return Data{}, err
	}
	return FromBytes(b), nil
}

func (c *CBOR[T]) ExtractPayload(d Data) error {
	return cborDec.Unmarshal(d.IntoBytes(), &c.Value)
}
