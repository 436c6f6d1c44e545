package hexdump

// Style decorates fragments of a rendered row. The zero Style leaves
// every fragment untouched, so the plain-text layout is the contract and
// any coloring is a pure transform over already-correct cells.
type Style struct {
	// Frame styles the border rows and the │/┆ divider glyphs.
	Frame func(s string) string
	// Pad styles the placeholder padding of the offset column.
	Pad func(s string) string
	// Byte styles one hex or character cell; offset is the absolute
	// offset of the byte the cell shows.
	Byte func(offset int64, s string) string
}

func (st Style) frame(s string) string {
	if st.Frame == nil {
		return s
	}
	return st.Frame(s)
}

func (st Style) pad(s string) string {
	if st.Pad == nil {
		return s
	}
	return st.Pad(s)
}

func (st Style) cell(offset int64, s string) string {
	if st.Byte == nil {
		return s
	}
	return st.Byte(offset, s)
}
