package alphabet

// DefaultPad is the filler used when a block must be completed.
const DefaultPad = 'X'

// ChunkAndPad splits text into consecutive chunks of size runes; the final
// chunk, if shorter, is right-padded with pad. An empty text yields no
// chunks.
//
// Errors: ErrInvalidParameter if size < 1.
// Complexity: O(len(text) + size).
func ChunkAndPad(text string, size int, pad rune) ([]string, error) {
	if size < 1 {
		return nil, Errorf("ChunkAndPad", ErrInvalidParameter, "chunk size %d", size)
	}

	src := []rune(text)
	if len(src) == 0 {
		return nil, nil
	}

	chunks := make([]string, 0, (len(src)+size-1)/size)
	for start := 0; start < len(src); start += size {
		end := start + size
		if end <= len(src) {
			chunks = append(chunks, string(src[start:end]))
			continue
		}
		block := make([]rune, size)
		n := copy(block, src[start:])
		for i := n; i < size; i++ {
			block[i] = pad
		}
		chunks = append(chunks, string(block))
	}

	return chunks, nil
}
