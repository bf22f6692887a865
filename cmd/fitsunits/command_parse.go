package main

import (
	"fmt"

	"github.com/fatih/color"
)

// ParseCmd parses a single unit string given on the command line.
type ParseCmd struct {
	UnitString string `arg:"" help:"Unit string to parse, e.g. \"erg/(cm**2 s Angstrom)\""`
}

func (p *ParseCmd) Run(ctx *Context) error {
	registry, err := resolveRegistry(ctx.Registry)
	if err != nil {
		return err
	}

	result, err := registry.Parse(p.UnitString)
	if err != nil {
		if !ctx.Quiet {
			color.Red("%v", err)
		}

		return err
	}

	if ctx.Verbose {
		color.Blue("parsed %q", p.UnitString)
	}

	if !ctx.Quiet {
		color.Green("%s", formatResult(result))
	} else {
		fmt.Println(formatResult(result))
	}

	return nil
}
