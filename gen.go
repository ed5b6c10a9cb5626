// Package gen is for go:generate directives to generate files.
package gen

// Generate JSON Schema definitions for the rendered TOML config model.
//go:generate go run ./cmd/clnrm schema --out-dir cmd/clnrm/schemas

// Generate CLI documentation with the gendocs command.
//go:generate go run ./cmd/clnrm gendocs md cmd/clnrm/docs/cli --only-commands
