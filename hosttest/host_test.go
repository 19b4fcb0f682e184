package hosttest

import (
	"bytes"
	"testing"

	"github.com/momentohq/functions/hostabi"
)

func TestChunkedBufferSplitsOversizedChunks(t *testing.T) {
	buffer := NewChunkedBuffer([]byte("abcdef"))
	if buffer.Remaining() != 6 {
		t.Fatalf("remaining = %d", buffer.Remaining())
	}

	chunk, ok := buffer.Read(4)
	if !ok || !bytes.Equal(chunk, []byte("abcd")) {
		t.Fatalf("first read = %q, %v", chunk, ok)
	}
	chunk, ok = buffer.Read(4)
	if !ok || !bytes.Equal(chunk, []byte("ef")) {
		t.Fatalf("second read = %q, %v", chunk, ok)
	}
	if _, ok := buffer.Read(4); ok {
		t.Fatal("expected exhaustion")
	}
	if buffer.Reads != 3 {
		t.Fatalf("reads = %d", buffer.Reads)
	}
}

func TestCacheListTruncation(t *testing.T) {
	cache := NewCache()
	for _, value := range []string{"a", "b", "c", "d"} {
		if _, err := cache.PushBack([]byte("l"), hostabi.InlinePayload([]byte(value)), 0, false, 3); err != nil {
			t.Fatalf("PushBack: %v", err)
		}
	}
	if got := len(cache.Lists["l"]); got != 3 {
		t.Fatalf("list length = %d, want truncation to 3", got)
	}
}

func TestMaterializeDrainsBuffers(t *testing.T) {
	p := hostabi.BufferPayload(NewChunkedBuffer([]byte("hel"), []byte("lo")))
	if got := materialize(p); !bytes.Equal(got, []byte("hello")) {
		t.Fatalf("materialize = %q", got)
	}
}
