package hexdump

import (
	"fmt"
	"strings"
)

// Row layout: │ <offset> │ <hex cells> │ <character cells> │
//
// The offset column is 8 uppercase hex digits padded with a middle dot,
// hex cells are 3 characters wide with a 2-character group gap every 8th
// column, character cells are 1 character wide with a 1-character gap.
// Borders use the same geometry with ─ fill and ┌┬┐/└┴┘ corners.

const (
	glyphBar    = "│"
	glyphGroup  = "┆"
	glyphOffPad = "·"
)

// Renderer formats chunks into table rows. Width must be greater than
// zero; callers validate it before any row is rendered.
type Renderer struct {
	Width int
	Style Style
}

func (r Renderer) border(left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString(mid)
	for i := 0; i < r.Width; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteString("──")
		}
		b.WriteString("───")
	}
	b.WriteString("─")
	b.WriteString(mid)
	b.WriteString("─")
	for i := 0; i < r.Width; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteString("─")
		}
		b.WriteString("─")
	}
	b.WriteString("─")
	b.WriteString(right)
	return r.Style.frame(b.String())
}

// Top renders the upper border row.
func (r Renderer) Top() string {
	return r.border("┌", "┬", "┐")
}

// Bottom renders the lower border row.
func (r Renderer) Bottom() string {
	return r.border("└", "┴", "┘")
}

// Row renders one data row for c. Cells past the chunk's valid length
// stay blank, so a short final chunk keeps the frame aligned.
func (r Renderer) Row(c Chunk) string {
	return r.row(c.Offset, c.Bytes)
}

// Empty renders the fallback row shown when the source delivered no
// bytes at all.
func (r Renderer) Empty(offset int64) string {
	return r.row(offset, nil)
}

func (r Renderer) row(offset int64, data []byte) string {
	var b strings.Builder

	b.WriteString(r.Style.frame(glyphBar))
	b.WriteString(" ")
	digits := fmt.Sprintf("%X", offset)
	if pad := 8 - len(digits); pad > 0 {
		b.WriteString(r.Style.pad(strings.Repeat(glyphOffPad, pad)))
	}
	b.WriteString(digits)
	b.WriteString(" ")
	b.WriteString(r.Style.frame(glyphBar))

	for i := 0; i < r.Width; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteString(" ")
			b.WriteString(r.Style.frame(glyphGroup))
		}
		if i < len(data) {
			b.WriteString(" ")
			b.WriteString(r.Style.cell(offset+int64(i), fmt.Sprintf("%02X", data[i])))
		} else {
			b.WriteString("   ")
		}
	}

	b.WriteString(" ")
	b.WriteString(r.Style.frame(glyphBar))
	b.WriteString(" ")

	for i := 0; i < r.Width; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteString(r.Style.frame(glyphGroup))
		}
		switch {
		case i >= len(data):
			b.WriteString(" ")
		case data[i] > 31 && data[i] < 127:
			b.WriteString(r.Style.cell(offset+int64(i), string(rune(data[i]))))
		default:
			b.WriteString(r.Style.cell(offset+int64(i), "·"))
		}
	}

	b.WriteString(" ")
	b.WriteString(r.Style.frame(glyphBar))
	return b.String()
}
