package payload

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/momentohq/functions/hostabi"
)

// drainChunkFloor is the minimum chunk size requested from the host while
// draining a host-resident buffer. Asking for at least this much keeps the
// round-trip count low even when the host under-reports its remaining
// length.
const drainChunkFloor = 16 * 1024

// Data is a buffer of bytes, which may be inline or on the host.
//
// Functions that pass bulk data straight from one host call into another
// should hand the Data through untouched: the bytes then never enter guest
// memory. Data is a use-once value; consuming it twice panics.
type Data struct {
	loc *location
}

type location struct {
	inline   []byte
	resource hostabi.BufferResource
	consumed bool
}

// FromBytes wraps already-owned bytes as an inline Data.
func FromBytes(b []byte) Data {
	return Data{loc: &location{inline: b}}
}

// FromString wraps a string's bytes as an inline Data.
func FromString(s string) Data {
	return FromBytes([]byte(s))
}

// FromResource wraps a host-resident buffer handle. The bytes stay on the
// host until IntoBytes is called.
func FromResource(r hostabi.BufferResource) Data {
	return Data{loc: &location{resource: r}}
}

// FromHost converts a boundary payload into a Data.
func FromHost(p hostabi.Payload) Data {
	if p.IsBuffer() {
		return FromResource(p.Buffer)
	}
	return FromBytes(p.Inline)
}

// IntoBytes turns the Data into a plain byte slice, consuming it.
//
// If the data is buffered on the host, this reads the buffer completely
// into guest memory. For small buffers this is inconsequential; for larger
// buffers it may make the function slow or exceed its memory allowance.
func (d Data) IntoBytes() []byte {
	loc := d.take()
	if loc == nil {
		return nil
	}
	if loc.resource == nil {
		b := loc.inline
		loc.inline = nil
		return b
	}

	r := loc.resource
	loc.resource = nil

	// The declared remaining length pre-sizes the accumulator. It is only
	// a hint: the loop ends on host-signaled exhaustion, never on a byte
	// count.
	buf := make([]byte, 0, r.Remaining())
	for {
		want := r.Remaining()
		if want < drainChunkFloor {
			want = drainChunkFloor
		}
		chunk, ok := r.Read(want)
		if !ok {
			break
		}
		buf = append(buf, chunk...)
	}
	return buf
}

// HostPayload consumes the Data and returns the untouched boundary shape,
// for handing the payload back across the boundary without materializing
// a host-resident buffer.
func (d Data) HostPayload() hostabi.Payload {
	loc := d.take()
	if loc == nil {
		return hostabi.Payload{}
	}
	if loc.resource != nil {
		r := loc.resource
		loc.resource = nil
		return hostabi.BufferPayload(r)
	}
	b := loc.inline
	loc.inline = nil
	return hostabi.InlinePayload(b)
}

// take marks the Data consumed, panicking on double use.
func (d Data) take() *location {
	if d.loc == nil {
		return nil
	}
	if d.loc.consumed {
		panic("payload: Data consumed twice")
	}
	d.loc.consumed = true
	return d.loc
}

// String describes the Data without materializing it.
func (d Data) String() string {
	switch {
	case d.loc == nil:
		return "Data(inline, length=0)"
	case d.loc.consumed:
		return "Data(consumed)"
	case d.loc.resource != nil:
		return fmt.Sprintf("Data(host, remaining=%d)", d.loc.resource.Remaining())
	default:
		return fmt.Sprintf("Data(inline, length=%d)", len(d.loc.inline))
	}
}

// MarshalLogObject reports location and length only, preserving the
// zero-copy property when a Data is logged.
func (d Data) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	switch {
	case d.loc == nil:
		enc.AddString("location", "inline")
		enc.AddInt("length", 0)
	case d.loc.consumed:
		enc.AddString("location", "consumed")
	case d.loc.resource != nil:
		enc.AddString("location", "host")
		enc.AddUint64("remaining", d.loc.resource.Remaining())
	default:
		enc.AddString("location", "inline")
		enc.AddInt("length", len(d.loc.inline))
	}
	return nil
}

// EncodePayload lets a Data be supplied anywhere an Encoder is expected.
func (d Data) EncodePayload() (Data, error) {
	return d, nil
}

// ExtractPayload lets a Data be requested anywhere an Extractor is
// expected, deferring materialization to the caller.
func (d *Data) ExtractPayload(src Data) error {
	*d = src
	return nil
}
