package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/hexframe/hexframe/hexdump"
)

func run() error {
	if CLI.Line <= 0 {
		return errors.New("bytes per line must be a positive integer")
	}
	limit := int64(-1)
	if CLI.Number != nil {
		if *CLI.Number < 0 {
			return errors.New("number of bytes to read cannot be negative")
		}
		limit = *CLI.Number
	}
	if CLI.NoColor {
		color.NoColor = true
	}

	if CLI.Watch > 0 {
		return runWatch(limit)
	}

	d := &hexdump.Dumper{
		Width:  CLI.Line,
		Limit:  limit,
		Offset: CLI.Offset,
		Style:  frameStyle(),
	}

	if CLI.File == "" {
		if CLI.Offset != 0 {
			return errors.New("STDIN does not support seeking to an offset")
		}
		return dumpTo(d, os.Stdin)
	}

	f, err := os.Open(CLI.File)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", CLI.File, err)
	}
	defer f.Close()

	return dumpTo(d, f)
}

func dumpTo(d *hexdump.Dumper, src io.Reader) error {
	out := bufio.NewWriter(os.Stdout)
	if err := d.Dump(src, out); err != nil {
		// Rows rendered before the failure are still worth showing.
		out.Flush()
		return err
	}
	return out.Flush()
}

// frameStyle dims the frame glyphs and the offset padding. The color
// package disables itself when stdout is not a terminal.
func frameStyle() hexdump.Style {
	faint := color.New(color.Faint)
	return hexdump.Style{
		Frame: func(s string) string { return faint.Sprint(s) },
		Pad:   func(s string) string { return faint.Sprint(s) },
	}
}
