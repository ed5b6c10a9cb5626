package main

import (
	"fmt"
	"os"
	"strings"
)

// writeFile writes data to path, the shared tail end of every command that
// accepts an output-path flag.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// parseSetFlags turns a repeated --set key=value flag into the authoring
// override map the Variable Resolver expects.
func parseSetFlags(sets []string) map[string]string {
	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok {
			continue
		}
		overrides[k] = v
	}
	return overrides
}
