package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// BatchCmd parses one unit string per line, read from File or, if File is
// empty, from stdin. This is the mode meant for piping FITS header
// BUNIT/CUNIT values through the parser (SPEC_FULL.md §2).
type BatchCmd struct {
	File string `short:"f" help:"File with one unit string per line; reads stdin if omitted" type:"path"`
}

func (b *BatchCmd) Run(ctx *Context) error {
	registry, err := resolveRegistry(ctx.Registry)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if b.File != "" {
		f, err := os.Open(b.File)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", b.File, err)
		}
		defer f.Close()

		r = f
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	failures := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := registry.Parse(line)
		if err != nil {
			failures++
			if !ctx.Quiet {
				color.Red("line %d: %q: %v", lineNo, line, err)
			}

			continue
		}

		if !ctx.Quiet {
			color.Green("line %d: %q: %s", lineNo, line, formatResult(result))
		} else {
			fmt.Printf("%q: %s\n", line, formatResult(result))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed reading input: %w", err)
	}

	if ctx.Verbose {
		color.Blue("processed %d line(s), %d failure(s)", lineNo, failures)
	}

	if failures > 0 {
		os.Exit(1)
	}

	return nil
}
