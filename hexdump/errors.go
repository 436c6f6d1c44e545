package hexdump

import "errors"

var (
	ErrorOffsetOutOfRange = errors.New("Offset lies beyond the end of the source")
	ErrorNotSeekable      = errors.New("Source does not support seeking to an offset")
)
