// Package tmpl implements the Tera-style template engine: Jinja-family
// rendering over github.com/nikolalohinski/gonja/v2, the four required
// custom functions (env, now_rfc3339, sha256, toml_encode), and loading of
// the side-loaded macro library. It is the concrete implementation of the
// TemplateRenderer interface the rest of the engine depends on (see
// Renderer below), mirroring how the teacher's pkg/otel injects a concrete
// SDK behind a narrow interface.
package tmpl

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/exec"
	"github.com/nikolalohinski/gonja/v2/loaders"

	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/determinism"
)

// Renderer is the narrow interface the rest of the engine depends on,
// letting any Jinja-family implementation stand in for gonja.
type Renderer interface {
	Render(source string, context map[string]any) (string, error)
}

// Engine wraps a gonja environment configured with the engine's custom
// functions and macro search path.
type Engine struct {
	env      *exec.Environment
	clock    *determinism.Clock
	rootDir  string
	seedFunc *determinism.Source
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithClock wires a shared frozen-clock cell into now_rfc3339().
func WithClock(c *determinism.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSeed wires a seeded random source into fake-data functions
// (uuid(), rand_int()).
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seedFunc = determinism.NewSource(seed) }
}

// WithMacroDir overrides the directory macros are loaded from; by default
// the engine extracts its embedded macro library (see embed.go) into a
// temp directory the first time it is needed.
func WithMacroDir(dir string) Option {
	return func(e *Engine) { e.rootDir = dir }
}

// New builds an Engine. If no clock is supplied, now_rfc3339() returns
// the live wall clock.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{clock: &determinism.Clock{}}
	for _, opt := range opts {
		opt(e)
	}

	if e.rootDir == "" {
		dir, err := ExtractDefaultMacros()
		if err != nil {
			return nil, clnrmerr.New(clnrmerr.KindTemplate, "extracting default macro library", err)
		}
		e.rootDir = dir
	}

	loader, err := loaders.NewFileSystemLoader(e.rootDir)
	if err != nil {
		return nil, clnrmerr.New(clnrmerr.KindTemplate, "constructing macro loader", err)
	}

	env := gonja.NewEnvironment(gonja.DefaultConfig, loader)
	e.env = env
	return e, nil
}

// globals returns the context entries injected into every render:
// the four required custom functions plus any resolved variables.
func (e *Engine) globals(vars map[string]any) map[string]any {
	ctx := make(map[string]any, len(vars)+4)
	for k, v := range vars {
		ctx[k] = v
	}

	ctx["env"] = func(name string, fallback ...string) (string, error) {
		if v, ok := os.LookupEnv(name); ok {
			return v, nil
		}
		if len(fallback) > 0 {
			return fallback[0], nil
		}
		return "", clnrmerr.UndefinedEnv(name)
	}

	ctx["now_rfc3339"] = func() string {
		return e.clock.RFC3339()
	}

	ctx["sha256"] = func(s string) string {
		sum := sha256.Sum256([]byte(s))
		return hex.EncodeToString(sum[:])
	}

	ctx["toml_encode"] = func(v any) (string, error) {
		return encodeTOMLLiteral(v)
	}

	if e.seedFunc != nil {
		ctx["uuid"] = func() string { return e.seedFunc.UUID() }
		ctx["rand_int"] = func(minV, maxV int) int { return e.seedFunc.Int(minV, maxV) }
	}

	return ctx
}

// Render compiles and executes source with the given variable context,
// injecting the custom functions. Syntax errors, undefined symbols, and
// function argument mismatches all surface as *clnrmerr.Error tagged
// KindTemplate.
func (e *Engine) Render(source string, vars map[string]any) (string, error) {
	tpl, err := e.env.FromString(source)
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindTemplate, "parsing template", err)
	}

	out, err := tpl.ExecuteToString(exec.NewContext(e.globals(vars)))
	if err != nil {
		return "", clnrmerr.New(clnrmerr.KindTemplate, "executing template", err)
	}
	return out, nil
}

// RenderFile renders the named file from the engine's macro root, so
// `{path}.tera` sources can be rendered the same way `{% import %}`
// resolves macro paths.
func (e *Engine) RenderFile(relPath string, vars map[string]any) (string, error) {
	tpl, err := e.env.FromFile(relPath)
	if err != nil {
		return "", clnrmerr.At(clnrmerr.KindTemplate, filepath.Join(e.rootDir, relPath), 0, 0, "parsing template file", err)
	}

	out, err := tpl.ExecuteToString(exec.NewContext(e.globals(vars)))
	if err != nil {
		return "", clnrmerr.At(clnrmerr.KindTemplate, filepath.Join(e.rootDir, relPath), 0, 0, "executing template file", err)
	}
	return out, nil
}

// encodeTOMLLiteral renders v as a TOML literal suitable for splicing
// into a surrounding TOML document: a string, integer, boolean, inline
// table, or inline array.
func encodeTOMLLiteral(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return `""`, nil
	case string:
		return fmt.Sprintf("%q", val), nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case int:
		return fmt.Sprintf("%d", val), nil
	case int64:
		return fmt.Sprintf("%d", val), nil
	case float64:
		return fmt.Sprintf("%g", val), nil
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			encoded, err := encodeTOMLLiteral(item)
			if err != nil {
				return "", err
			}
			parts[i] = encoded
		}
		return "[" + joinComma(parts) + "]", nil
	case map[string]any:
		parts := make([]string, 0, len(val))
		for k, item := range val {
			encoded, err := encodeTOMLLiteral(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, fmt.Sprintf("%s = %s", k, encoded))
		}
		return "{ " + joinComma(parts) + " }", nil
	default:
		return "", clnrmerr.Newf(clnrmerr.KindTemplate, nil, "toml_encode: unsupported value type %T", v)
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
