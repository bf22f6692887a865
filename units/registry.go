package units

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Registry is a copy-on-write view of the atom table (SPEC_FULL.md §6.1).
// The zero value is not usable; obtain one from DefaultRegistry or
// LoadRegistryOverlay.
type Registry struct {
	atomsByName map[string]*atomEntry
}

// DefaultRegistry returns a Registry backed by the built-in, immutable
// atom table with no overlay applied.
func DefaultRegistry() *Registry {
	return &Registry{atomsByName: defaultAtomsByName}
}

// Parse runs the scanner against unitString using this registry's atom
// table (spec.md §6).
func (r *Registry) Parse(unitString string) (Result, error) {
	state := newParseState(unitString, r, 0)
	return state.parse()
}

// overlayDocument is the top-level shape of a registry overlay YAML file
// (SPEC_FULL.md §6.1).
type overlayDocument struct {
	Units []overlayUnit `yaml:"units"`
}

type overlayUnit struct {
	Name   string             `yaml:"name"`
	Factor float64            `yaml:"factor"`
	Vector map[string]float64 `yaml:"vector"`
	Prefix string             `yaml:"prefix"`
}

// LoadRegistryOverlay reads a YAML overlay document from path and returns
// a new Registry holding a copy of base's atom table plus the overlay's
// atoms. base's own table is never mutated. If path is empty, it falls
// back to the FITSUNITS_REGISTRY environment variable (populated from a
// .env file via godotenv if one is present, mirroring the teacher's
// loadEnvFiles step); if that is also empty, base is returned unchanged.
func LoadRegistryOverlay(path string, base *Registry) (*Registry, error) {
	if base == nil {
		base = DefaultRegistry()
	}

	if path == "" {
		_ = godotenv.Load()
		path = os.Getenv("FITSUNITS_REGISTRY")
		if path == "" {
			return base, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc overlayDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	merged := make(map[string]*atomEntry, len(base.atomsByName)+len(doc.Units))
	for name, entry := range base.atomsByName {
		merged[name] = entry
	}

	for _, u := range doc.Units {
		names := splitOverlayNames(u.Name)
		if len(names) == 0 {
			return nil, ErrRegistryInvalid
		}

		class, ok := parsePrefixClass(u.Prefix)
		if !ok {
			return nil, ErrRegistryInvalid
		}

		var vec [numQuantities]float64
		for abbrev, exponent := range u.Vector {
			q, ok := quantityIndex[abbrev]
			if !ok {
				return nil, ErrRegistryInvalid
			}
			vec[q] = exponent
		}

		for _, n := range names {
			if _, exists := merged[n]; exists {
				return nil, ErrRegistryNameConflict
			}
		}

		entry := &atomEntry{names: names, factor: u.Factor, vector: vec, prefix: class}
		for _, n := range names {
			merged[n] = entry
		}
	}

	return &Registry{atomsByName: merged}, nil
}

func splitOverlayNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			names = append(names, p)
		}
	}

	return names
}

func parsePrefixClass(s string) (prefixClass, bool) {
	switch strings.TrimSpace(s) {
	case "none", "":
		return prefixNone, true
	case "sub":
		return prefixSubOnly, true
	case "super":
		return prefixSuperOnly, true
	case "any":
		return prefixAny, true
	default:
		return prefixNone, false
	}
}
