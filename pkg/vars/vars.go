// Package vars implements the three-tier variable resolver: authoring
// overrides, environment variables, then defaults. It mirrors the shape of
// the teacher's pkg/config.EnvStruct overlay system, specialized to the
// fixed set of recognized template variables.
package vars

import "os"

// Var names one recognized resolved variable.
type Var string

// The canonical recognized variable keys.
const (
	Svc         Var = "svc"
	Env         Var = "env"
	Endpoint    Var = "endpoint"
	Exporter    Var = "exporter"
	Image       Var = "image"
	FreezeClock Var = "freeze_clock"
	Token       Var = "token"
)

// envName is the canonical environment variable name backing each key.
// Both the key list and this mapping must be reproduced exactly; the
// resolver is only as correct as this table.
var envName = map[Var]string{
	Svc:         "SERVICE_NAME",
	Env:         "ENV",
	Endpoint:    "OTEL_ENDPOINT",
	Exporter:    "OTEL_TRACES_EXPORTER",
	Image:       "IMAGE",
	FreezeClock: "FREEZE_CLOCK",
	Token:       "OTEL_TOKEN",
}

// defaultValue is the fallback value used when neither authoring overrides
// nor the environment provide a value.
var defaultValue = map[Var]string{
	Svc:         "clnrm",
	Env:         "ci",
	Endpoint:    "http://localhost:4318",
	Exporter:    "otlp",
	Image:       "registry/clnrm:latest",
	FreezeClock: "2025-01-01T00:00:00Z",
	Token:       "",
}

// Recognized returns the canonical variable keys in stable order.
func Recognized() []Var {
	return []Var{Svc, Env, Endpoint, Exporter, Image, FreezeClock, Token}
}

// EnvName returns the canonical environment variable name for key, and
// whether key is recognized.
func EnvName(key Var) (string, bool) {
	name, ok := envName[key]
	return name, ok
}

// Default returns the default value for key, and whether key is recognized.
func Default(key Var) (string, bool) {
	v, ok := defaultValue[key]
	return v, ok
}

// EnvSnapshot is a pure view over process environment variables, taken
// once so resolution stays pure and testable (no hidden os.Getenv calls
// scattered through the resolver).
type EnvSnapshot map[string]string

// Snapshot captures the current process environment for every canonical
// variable name. Callers needing full hermeticity can build their own
// EnvSnapshot instead of calling this.
func Snapshot() EnvSnapshot {
	snap := make(EnvSnapshot, len(envName))
	for _, name := range envName {
		if v, ok := os.LookupEnv(name); ok {
			snap[name] = v
		}
	}
	return snap
}

// Resolve applies the three-tier precedence: authoring vars, then env,
// then defaults. authoring holds only the keys the template's [vars]
// table actually set; unset authoring keys fall through. Unrecognized
// keys present in authoring are copied into the result unchanged.
func Resolve(authoring map[string]string, env EnvSnapshot, defaults map[Var]string) map[string]string {
	if defaults == nil {
		defaults = defaultValue
	}
	resolved := make(map[string]string, len(authoring)+len(envName))

	for _, key := range Recognized() {
		if v, ok := authoring[string(key)]; ok {
			resolved[string(key)] = v
			continue
		}
		if name, ok := envName[key]; ok {
			if v, ok := env[name]; ok {
				resolved[string(key)] = v
				continue
			}
		}
		resolved[string(key)] = defaults[key]
	}

	for k, v := range authoring {
		if _, known := resolved[k]; known {
			continue
		}
		if !isRecognizedName(k) {
			resolved[k] = v
		}
	}

	return resolved
}

func isRecognizedName(k string) bool {
	for _, key := range Recognized() {
		if string(key) == k {
			return true
		}
	}
	return false
}
