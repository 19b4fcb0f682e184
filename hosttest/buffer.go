package hosttest

// ChunkedBuffer is a scripted host-resident buffer. It delivers the given
// chunks one per read regardless of the requested size, then signals
// exhaustion. DeclaredRemaining is what Remaining reports; set it away from
// the true total to exercise hint-only semantics.
type ChunkedBuffer struct {
	Chunks            [][]byte
	DeclaredRemaining uint64
	Reads             int
}

// NewChunkedBuffer builds a buffer whose declared remaining matches the
// chunks' total length.
func NewChunkedBuffer(chunks ...[]byte) *ChunkedBuffer {
	var total uint64
	for _, c := range chunks {
		total += uint64(len(c))
	}
	return &ChunkedBuffer{Chunks: chunks, DeclaredRemaining: total}
}

func (b *ChunkedBuffer) Remaining() uint64 {
	return b.DeclaredRemaining
}

func (b *ChunkedBuffer) Read(maxBytes uint64) ([]byte, bool) {
	b.Reads++
	if len(b.Chunks) == 0 {
		return nil, false
	}
	chunk := b.Chunks[0]
	if uint64(len(chunk)) > maxBytes {
		b.Chunks[0] = chunk[maxBytes:]
		chunk = chunk[:maxBytes]
	} else {
		b.Chunks = b.Chunks[1:]
	}
	if b.DeclaredRemaining >= uint64(len(chunk)) {
		b.DeclaredRemaining -= uint64(len(chunk))
	} else {
		b.DeclaredRemaining = 0
	}
	return chunk, true
}
