package hexdump

import "io"

// Chunk is one buffer's worth of bytes, tagged with the offset of its
// first byte. Bytes aliases the reader's reusable buffer and is only
// valid until the next call to Next.
type Chunk struct {
	Offset int64
	Bytes  []byte
}

// ChunkReader pulls fixed-size chunks from a byte source, honoring an
// optional total-byte limit. It is single-pass and not restartable.
type ChunkReader struct {
	src       io.Reader
	buf       []byte
	offset    int64
	remaining int64
	bounded   bool
	err       error
}

// NewChunkReader reads up to width bytes per chunk from src, starting the
// offset numbering at startOffset. A negative limit means read until the
// source is exhausted.
func NewChunkReader(src io.Reader, width int, limit int64, startOffset int64) *ChunkReader {
	return &ChunkReader{
		src:       src,
		buf:       make([]byte, width),
		offset:    startOffset,
		remaining: limit,
		bounded:   limit >= 0,
	}
}

// Next returns the next chunk. It returns io.EOF once the source stops
// delivering bytes or the limit is reached, and any read failure as-is.
// Bytes delivered alongside a read failure are returned first; the
// failure surfaces on the following call.
func (r *ChunkReader) Next() (Chunk, error) {
	if r.err != nil {
		return Chunk{}, r.err
	}

	want := int64(len(r.buf))
	if r.bounded && r.remaining < want {
		want = r.remaining
	}
	if want == 0 {
		r.err = io.EOF
		return Chunk{}, r.err
	}

	n, err := r.src.Read(r.buf[:want])
	if n <= 0 {
		// Zero bytes is the termination signal, with or without io.EOF.
		if err == nil || err == io.EOF {
			err = io.EOF
		}
		r.err = err
		return Chunk{}, r.err
	}
	if int64(n) > want {
		// Never trust a source that claims to have over-delivered.
		n = int(want)
	}
	if err != nil {
		r.err = err
	}

	c := Chunk{Offset: r.offset, Bytes: r.buf[:n]}
	r.offset += int64(n)
	if r.bounded {
		if int64(n) > r.remaining {
			r.remaining = 0
		} else {
			r.remaining -= int64(n)
		}
	}
	return c, nil
}
