// Package clnrmerr defines the tagged error taxonomy shared by every layer
// of the engine: config, template, backend, scenario, validation, cache, and
// timeout errors. Callers distinguish kinds with errors.Is against the Kind
// sentinels, not with type assertions, so wrapping with fmt.Errorf("%w: ...")
// keeps working as errors cross package boundaries.
package clnrmerr

import (
	"errors"
	"fmt"
)

// Kind identifies which layer of the taxonomy an error belongs to.
type Kind string

// The closed set of error kinds named in the error handling design.
const (
	KindConfig     Kind = "ConfigError"
	KindTemplate   Kind = "TemplateError"
	KindBackend    Kind = "BackendError"
	KindScenario   Kind = "ScenarioError"
	KindValidation Kind = "ValidationError"
	KindCache      Kind = "CacheError"
	KindTimeout    Kind = "TimeoutError"
)

// Error is a taxonomy-tagged error. It wraps an underlying cause and,
// optionally, source position information for parse/render failures.
type Error struct {
	Kind   Kind
	Reason string
	Path   string
	Line   int
	Column int
	Cause  error
}

// Error implements error.
func (e *Error) Error() string {
	loc := ""
	if e.Path != "" {
		if e.Line > 0 {
			loc = fmt.Sprintf(" (%s:%d:%d)", e.Path, e.Line, e.Column)
		} else {
			loc = fmt.Sprintf(" (%s)", e.Path)
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s%s: %v", e.Kind, e.Reason, loc, e.Cause)
	}
	return fmt.Sprintf("%s: %s%s", e.Kind, e.Reason, loc)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel Kind this error carries,
// allowing callers to write errors.Is(err, clnrmerr.Config) style checks
// via the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Reason != "" || t.Cause != nil {
		return false
	}
	return e.Kind == t.Kind
}

// sentinel returns a bare *Error carrying only a Kind, used as the
// comparison target for errors.Is(err, clnrmerr.Config).
func sentinel(k Kind) *Error { return &Error{Kind: k} }

// Sentinels for errors.Is comparisons, e.g. errors.Is(err, clnrmerr.Config).
var (
	Config     = sentinel(KindConfig)
	Template   = sentinel(KindTemplate)
	Backend    = sentinel(KindBackend)
	Scenario   = sentinel(KindScenario)
	Validation = sentinel(KindValidation)
	Cache      = sentinel(KindCache)
	Timeout    = sentinel(KindTimeout)
)

// New builds a tagged error with no source position.
func New(kind Kind, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, Cause: cause}
}

// Newf builds a tagged error with a formatted reason.
func Newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...), Cause: cause}
}

// At builds a tagged error carrying a file path and, when known, a
// line/column position, for template and config parse failures.
func At(kind Kind, path string, line, column int, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, Path: path, Line: line, Column: column, Cause: cause}
}

// WrapTimeout wraps err, whatever its kind, to record that a deadline was
// exceeded, per the spec's "TimeoutError wraps any of the above" rule.
func WrapTimeout(err error, deadline string) *Error {
	return &Error{Kind: KindTimeout, Reason: fmt.Sprintf("exceeded deadline %s", deadline), Cause: err}
}

// OrphanReference reports a scenario.service referencing an undefined
// service id.
func OrphanReference(scenario, service string) *Error {
	return Newf(KindConfig, nil, "scenario %q references undefined service %q", scenario, service)
}

// UndefinedEnv reports env() lookup failure in the template engine.
func UndefinedEnv(name string) *Error {
	return Newf(KindTemplate, nil, "undefined environment variable %q", name)
}

// KindOf returns the Kind of err if it (or something it wraps) is a
// *Error, and false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
