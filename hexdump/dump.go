// Package hexdump renders byte streams as framed tables showing offset,
// hexadecimal values and printable characters.
package hexdump

import (
	"fmt"
	"io"
)

// Dumper holds the configuration for one dump. All fields are assumed
// validated by the caller: Width must be positive and a nonzero Offset
// requires src to support seeking.
type Dumper struct {
	// Width is the number of byte cells per row.
	Width int
	// Limit caps the total number of bytes read. Negative means read
	// until the source is exhausted.
	Limit int64
	// Offset is the signed byte offset at which reading starts.
	Offset int64
	// Style optionally decorates the output.
	Style Style
}

// Dump reads src and writes the rendered table to w, one row per line.
// Output is incremental: rows written before a failed read stay valid.
// When the source delivers no bytes at all, a single blank row is
// emitted between the borders so an empty stream is still visible.
func (d *Dumper) Dump(src io.Reader, w io.Writer) error {
	display := int64(0)
	if d.Offset != 0 {
		seeker, ok := src.(io.Seeker)
		if !ok {
			return ErrorNotSeekable
		}
		var err error
		display, err = Resolve(seeker, d.Offset)
		if err != nil {
			return err
		}
	}

	r := Renderer{Width: d.Width, Style: d.Style}
	if _, err := fmt.Fprintln(w, r.Top()); err != nil {
		return err
	}

	chunks := NewChunkReader(src, d.Width, d.Limit, display)
	rows := 0
	for {
		c, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, r.Row(c)); err != nil {
			return err
		}
		rows++
	}

	if rows == 0 {
		if _, err := fmt.Fprintln(w, r.Empty(display)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.Bottom())
	return err
}
