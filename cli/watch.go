package main

import (
	"bytes"
	"errors"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"

	"github.com/hexframe/hexframe/hexdump"
)

// runWatch re-reads the file every interval and re-renders the dump,
// showing bytes that changed since the previous iteration in red.
func runWatch(limit int64) error {
	if CLI.File == "" {
		return errors.New("watch mode requires a file")
	}

	red := color.New(color.FgRed)
	var prev []byte
	for {
		startTime := time.Now()

		data, err := os.ReadFile(CLI.File)
		if err != nil {
			return err
		}

		changed := map[int64]bool{}
		for i := 0; i < len(data) && i < len(prev); i++ {
			if data[i] != prev[i] {
				changed[int64(i)] = true
			}
		}

		// Style.Byte receives absolute offsets, which match positions in
		// the snapshot because the dump reads the snapshot in place.
		style := frameStyle()
		style.Byte = func(offset int64, s string) string {
			if changed[offset] {
				return red.Sprint(s)
			}
			return s
		}

		d := &hexdump.Dumper{
			Width:  CLI.Line,
			Limit:  limit,
			Offset: CLI.Offset,
			Style:  style,
		}

		screen.Clear()
		screen.MoveTopLeft()
		if err := dumpTo(d, bytes.NewReader(data)); err != nil {
			return err
		}

		prev = data
		if elapsed := time.Now().Sub(startTime); elapsed < CLI.Watch {
			time.Sleep(CLI.Watch - elapsed)
		}
	}
}
