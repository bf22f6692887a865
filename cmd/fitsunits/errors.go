package main

import "errors"

// Sentinel errors for the CLI layer, following the teacher's package-wide
// sentinel-error convention (errors.go at the module root).
var (
	// ErrRegistryFileNotFound indicates the file named by --registry or
	// FITSUNITS_REGISTRY does not exist.
	ErrRegistryFileNotFound = errors.New("registry overlay file not found")
	// ErrNoInputProvided indicates neither a positional argument nor stdin
	// data was supplied to a command that requires unit strings.
	ErrNoInputProvided = errors.New("no unit string provided")
)
