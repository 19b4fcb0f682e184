package payload

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// zstdEncoder and zstdDecoder are reused across calls; both are stateless
// in EncodeAll/DecodeAll mode.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("payload: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("payload: zstd decoder initialization failed: " + err.Error())
	}
}

// Zstd is a compressed-at-rest byte payload. The value held in guest
// memory is the uncompressed bytes; encoding produces a zstd frame and
// extraction expects one. Useful for large text-like values in storage
// with per-byte cost.
type Zstd []byte

func (z Zstd) EncodePayload() (Data, error) {
	return FromBytes(zstdEncoder.EncodeAll(z, nil)), nil
}

func (z *Zstd) ExtractPayload(d Data) error {
	out, err := zstdDecoder.DecodeAll(d.IntoBytes(), nil)
	if err != nil {
		return &ExtractError{Cause: err}
	}
	*z = out
	return nil
}

// LZ4 is a compressed-at-rest byte payload using the self-describing LZ4
// frame format. Faster than Zstd with a lower compression ratio.
type LZ4 []byte

func (l LZ4) EncodePayload() (Data, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(l); err != nil {
		return Data{}, &EncodeError{Cause: err}
	}
	if err := w.Close(); err != nil {
		return Data{}, &EncodeError{Cause: err}
	}
	return FromBytes(buf.Bytes()), nil
}

func (l *LZ4) ExtractPayload(d Data) error {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(d.IntoBytes())))
	if err != nil {
		return &ExtractError{Cause: err}
	}
	*l = out
	return nil
}
