package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jsdingra11/fitsunits/units"
)

// loadEnvFiles loads a .env file from the current directory if one exists,
// mirroring the teacher's cmd/snapsql/utils.go loadEnvFiles step.
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// resolveRegistry loads .env files, then builds a *units.Registry from the
// --registry flag (highest priority) or the FITSUNITS_REGISTRY environment
// variable, falling back to the built-in default registry when neither is
// set (spec.md §6.1/§9).
func resolveRegistry(registryPath string) (*units.Registry, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	if registryPath != "" && !fileExists(registryPath) {
		return nil, fmt.Errorf("%w: %s", ErrRegistryFileNotFound, registryPath)
	}

	registry, err := units.LoadRegistryOverlay(registryPath, units.DefaultRegistry())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRegistryFileNotFound, registryPath)
		}

		return nil, fmt.Errorf("failed to load registry overlay: %w", err)
	}

	return registry, nil
}
