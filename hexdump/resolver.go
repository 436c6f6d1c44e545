package hexdump

import (
	"fmt"
	"io"
)

// Resolve positions src so that the next read starts at the requested
// offset and returns the display offset for the first output row. A
// positive offset counts from the start of the source, a negative offset
// from the end. Offsets whose magnitude exceeds the source length fail
// with ErrorOffsetOutOfRange when positive and clamp to the start of the
// source when negative.
//
// Callers must not invoke Resolve with a nonzero offset on sources that
// cannot seek; that combination is rejected before the dump starts.
func Resolve(src io.Seeker, offset int64) (int64, error) {
	if offset == 0 {
		return 0, nil
	}

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("cannot determine source length: %w", err)
	}

	target := offset
	if offset > 0 {
		if offset > size {
			return 0, ErrorOffsetOutOfRange
		}
	} else {
		target = size + offset
		if target < 0 {
			// Seeking before the start saturates to the start.
			target = 0
		}
	}

	if _, err := src.Seek(target, io.SeekStart); err != nil {
		return 0, fmt.Errorf("cannot seek to offset %d: %w", target, err)
	}
	return target, nil
}
