package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context is the global context threaded into every command's Run method,
// mirroring the teacher's cmd/snapsql/main.go Context struct.
type Context struct {
	Registry string
	Verbose  bool
	Quiet    bool
}

// CLI is the top-level command structure (teacher's cmd/snapsql/main.go
// CLI struct, scaled down to this module's two parsing commands plus
// version).
var CLI struct {
	Registry string     `help:"Registry overlay YAML file (falls back to FITSUNITS_REGISTRY)" type:"path"`
	Verbose  bool       `help:"Enable verbose output" short:"v"`
	Quiet    bool       `help:"Suppress decorated output; print plain results only" short:"q"`
	Parse    ParseCmd   `cmd:"" help:"Parse a single unit string"`
	Batch    BatchCmd   `cmd:"" help:"Parse one unit string per line from a file or stdin"`
	Version  VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd reports the CLI's version string.
type VersionCmd struct{}

func (v *VersionCmd) Run(_ *Context) error {
	fmt.Println("fitsunits v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Registry: CLI.Registry,
		Verbose:  CLI.Verbose,
		Quiet:    CLI.Quiet,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
