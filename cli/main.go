package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

const version = "1.0.0"

var CLI struct {
	File string `arg:"" optional:"" name:"file" help:"File to read. Defaults to reading from stdin."`

	Line   int    `short:"l" optional:"" default:"16" help:"Bytes per line in output."`
	Number *int64 `short:"n" optional:"" help:"Number of bytes to read (default: all)."`
	Offset int64  `short:"o" optional:"" help:"Byte offset at which to begin reading. Negative values seek backwards from the end of the file."`

	Watch   time.Duration `optional:"" help:"Re-read the file at this interval and highlight bytes that changed."`
	NoColor bool          `optional:"" help:"Disable colored output."`

	Version kong.VersionFlag `short:"v" help:"Display the version number and exit."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("hexframe"),
		kong.Description("A hex dump utility with style."),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	err = run()
	ctx.FatalIfErrorf(err)
}
