package payload

import (
	"bytes"
	"testing"
)

type record struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestCBORRoundTrip(t *testing.T) {
	input := record{Name: "kvc", Count: 3}

	data, err := CBOR[record]{Value: input}.EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Extract[CBOR[record]](data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got.Value != input {
		t.Fatalf("got %+v, want %+v", got.Value, input)
	}
}

func TestCBORDeterministic(t *testing.T) {
	value := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := CBOR[map[string]int]{Value: value}.EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := CBOR[map[string]int]{Value: value}.EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first.IntoBytes(), second.IntoBytes()) {
		t.Fatal("same value produced different CBOR bytes")
	}
}

func TestCBORExtractMalformed(t *testing.T) {
	if _, err := Extract[CBOR[record]](FromBytes([]byte{0xff, 0x00})); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	input := record{Name: "kvc", Count: 9}

	data, err := YAML[record]{Value: input}.EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Extract[YAML[record]](data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got.Value != input {
		t.Fatalf("got %+v, want %+v", got.Value, input)
	}
}

func TestZstdRoundTrip(t *testing.T) {
	for _, input := range [][]byte{nil, {0x7}, bytes.Repeat([]byte("compress me "), 4096)} {
		data, err := Zstd(input).EncodePayload()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Extract[Zstd](data)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		if !bytes.Equal(got, input) {
			t.Fatalf("got %d bytes, want %d", len(got), len(input))
		}
	}
}

func TestZstdExtractMalformed(t *testing.T) {
	_, err := Extract[Zstd](FromString("not a zstd frame"))
	if err == nil {
		t.Fatal("expected error for malformed frame")
	}
	if _, ok := err.(*ExtractError); !ok {
		t.Fatalf("got %T, want *ExtractError", err)
	}
}

func TestLZ4RoundTrip(t *testing.T) {
	for _, input := range [][]byte{nil, {0x7}, bytes.Repeat([]byte("fast lane "), 4096)} {
		data, err := LZ4(input).EncodePayload()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Extract[LZ4](data)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		if !bytes.Equal(got, input) {
			t.Fatalf("got %d bytes, want %d", len(got), len(input))
		}
	}
}
