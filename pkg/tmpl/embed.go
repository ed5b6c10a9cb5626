package tmpl

import (
	"embed"
	"os"
	"path/filepath"
)

//go:embed macros/clnrm.tera
var defaultMacros embed.FS

// ExtractDefaultMacros writes the embedded macro library out to a
// directory under os.TempDir so the gonja filesystem loader (which needs
// a real root, not an fs.FS) can resolve `{% import "macros/clnrm.tera" %}`
// without callers needing to ship the file themselves.
func ExtractDefaultMacros() (string, error) {
	dir, err := os.MkdirTemp("", "clnrm-macros-*")
	if err != nil {
		return "", err
	}

	const rel = "macros/clnrm.tera"
	content, err := defaultMacros.ReadFile(rel)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return "", err
	}

	return dir, nil
}
