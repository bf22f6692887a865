package main

import (
	"fmt"
	"strings"

	"github.com/jsdingra11/fitsunits/units"
)

// quantityNames is the display name for each BaseVector position, in the
// fixed order spec.md §3 defines. This is a CLI-layer presentation detail,
// not a canonical-formatting feature of the core parser (which spec.md §1
// explicitly excludes).
var quantityNames = [...]string{
	"time", "length", "mass", "plane_angle", "solid_angle", "charge", "mole",
	"temperature", "luminous_intensity", "mass_ratio_solar", "magnitude",
	"pixel", "count", "voxel", "bin", "bit", "beam",
}

// formatVector renders only the nonzero entries of a BaseVector, e.g.
// "time=-3 length=-1 mass=1", or "dimensionless" when all entries are zero.
func formatVector(v units.BaseVector) string {
	var parts []string

	for i, exponent := range v {
		if exponent != 0 {
			parts = append(parts, fmt.Sprintf("%s=%g", quantityNames[i], exponent))
		}
	}

	if len(parts) == 0 {
		return "dimensionless"
	}

	return strings.Join(parts, " ")
}

// formatResult renders a successful units.Result as one line.
func formatResult(result units.Result) string {
	if result.Func == units.FuncNone {
		return fmt.Sprintf("scale=%g vector=[%s]", result.Scale, formatVector(result.Vector))
	}

	return fmt.Sprintf("func=%s scale=%g vector=[%s]", result.Func, result.Scale, formatVector(result.Vector))
}
