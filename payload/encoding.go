package payload

// Encoder converts a domain value into a Data payload. Implementations
// must be pure conversions: no side effects beyond the conversion itself.
// The error type is chosen by the codec, not by the call site; infallible
// codecs always return a nil error.
type Encoder interface {
	EncodePayload() (Data, error)
}

// Extractor fills a domain value from a Data payload, materializing it if
// needed. Implementations use a pointer receiver.
type Extractor interface {
	ExtractPayload(Data) error
}

// Extract converts a payload into a value of codec type T.
//
//	greeting, err := payload.Extract[payload.JSON[Greeting]](data)
func Extract[T any, P interface {
	*T
	Extractor
}](d Data) (T, error) {
	var v T
	if err := P(&v).ExtractPayload(d); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// EncodeError wraps a codec failure while converting a value to bytes.
type EncodeError struct {
	Cause error
}

func (e *EncodeError) Error() string {
	return "payload: encode failed: " + e.Cause.Error()
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// ExtractError wraps a codec failure while converting bytes to a value.
type ExtractError struct {
	Cause error
}

func (e *ExtractError) Error() string {
	return "payload: extract failed: " + e.Cause.Error()
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Bytes is the passthrough codec. Infallible both ways.
type Bytes []byte

func (b Bytes) EncodePayload() (Data, error) {
	return FromBytes(b), nil
}

func (b *Bytes) ExtractPayload(d Data) error {
	*b = d.IntoBytes()
	return nil
}

// Text is the UTF-8 text codec. Infallible both ways.
type Text string

func (t Text) EncodePayload() (Data, error) {
	return FromString(string(t)), nil
}

func (t *Text) ExtractPayload(d Data) error {
	*t = Text(d.IntoBytes())
	return nil
}

// Empty is the zero-length payload codec. Extraction discards the payload
// without materializing it.
type Empty struct{}

func (Empty) EncodePayload() (Data, error) {
	return FromBytes(nil), nil
}

func (*Empty) ExtractPayload(d Data) error {
	d.HostPayload()
	return nil
}
