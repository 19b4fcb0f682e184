package payload

import (
	"bytes"
	"testing"
)

func TestJSONExtract(t *testing.T) {
	type named struct {
		Name string `json:"name"`
	}

	got, err := Extract[JSON[named]](FromString(`{"name":"kvc"}`))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got.Value.Name != "kvc" {
		t.Fatalf("got name %q, want %q", got.Value.Name, "kvc")
	}
}

func TestJSONEncode(t *testing.T) {
	type greeting struct {
		Message string `json:"message"`
	}

	data, err := JSON[greeting]{Value: greeting{Message: "Hello, kvc!"}}.EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := data.IntoBytes(); string(got) != `{"message":"Hello, kvc!"}` {
		t.Fatalf("got %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type doc struct {
		ID    int      `json:"id"`
		Tags  []string `json:"tags"`
		Blurb string   `json:"blurb"`
	}

	for _, input := range []doc{
		{},
		{ID: 1, Tags: []string{"a"}, Blurb: "x"},
		{ID: 7, Tags: []string{"long"}, Blurb: string(bytes.Repeat([]byte("lorem ipsum "), 512))},
	} {
		data, err := JSON[doc]{Value: input}.EncodePayload()
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Extract[JSON[doc]](data)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		if got.Value.ID != input.ID || got.Value.Blurb != input.Blurb {
			t.Fatalf("round trip mismatch: %+v != %+v", got.Value, input)
		}
	}
}

func TestJSONExtractMalformed(t *testing.T) {
	if _, err := Extract[JSON[map[string]string]](FromString(`{"name":`)); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestRawJSON(t *testing.T) {
	data, err := RawJSON(`{"ok":true}`).EncodePayload()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Extract[RawJSON](data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if string(got) != `{"ok":true}` {
		t.Fatalf("got %q", got)
	}

	if _, err := RawJSON(`{"ok":`).EncodePayload(); err == nil {
		t.Fatal("expected error for invalid raw json")
	}
}
