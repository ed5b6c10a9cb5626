// Package model defines the rendered-config data model (TestConfig and its
// nested sections) and the loader that deserializes rendered TOML into it,
// per the config model and loader component of the engine.
package model

import "github.com/clnrm/clnrm/pkg/span"

// TestConfig is the root of a rendered test descriptor.
type TestConfig struct {
	Meta        Meta                   `toml:"meta"`
	OTel        OTelConfig             `toml:"otel"`
	Service     map[string]ServiceSpec `toml:"service"`
	Scenario    []Scenario             `toml:"scenario"`
	Expect      Expectations           `toml:"expect"`
	Determinism *Determinism           `toml:"determinism"`
	Limits      *Limits                `toml:"limits"`
	Report      *ReportConfig          `toml:"report"`

	// Vars is authoring-only: consumed by the variable resolver before
	// rendering and ignored here; kept only so unknown-key tolerance
	// doesn't warn about it.
	Vars map[string]string `toml:"vars"`
}

// Meta carries descriptor identity. Name and Version are recognized;
// any other top-level keys are tolerated for forward compatibility.
type Meta struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// OTelConfig is the `[otel]` section, including nested header and
// propagator tables.
type OTelConfig struct {
	Endpoint    string            `toml:"endpoint"`
	Exporter    string            `toml:"exporter"`
	Headers     map[string]string `toml:"headers"`
	Propagators []string          `toml:"propagators"`
}

// ServicePluginKind is the closed set of service plugin kinds.
type ServicePluginKind string

// The closed set of service plugin kinds.
const (
	PluginGenericContainer ServicePluginKind = "generic_container"
	PluginDatabaseLike     ServicePluginKind = "database_like"
	PluginCustom           ServicePluginKind = "custom"
)

// ServiceSpec describes one provisionable service.
type ServiceSpec struct {
	Plugin      ServicePluginKind `toml:"plugin"`
	Image       string            `toml:"image"`
	Argv        []string          `toml:"argv"`
	Environment map[string]string `toml:"environment"`
	WaitForSpan string            `toml:"wait_for_span"`
}

// Scenario is one atomic unit of test work.
type Scenario struct {
	Name     string   `toml:"name"`
	Service  string   `toml:"service"`
	Command  []string `toml:"command"`
	Artifact []string `toml:"artifact"`

	// Expect overrides this scenario's expectations in place of the
	// config-level Expect block, when non-nil.
	Expect *Expectations `toml:"expect"`
}

// SpanCollectionStatus is the closed set of collection outcomes.
type SpanCollectionStatus string

// The closed set of span collection statuses.
const (
	CollectionComplete  SpanCollectionStatus = "complete"
	CollectionTruncated SpanCollectionStatus = "truncated"
	CollectionMissing   SpanCollectionStatus = "missing"
)

// ExecOutcome is the result of running a scenario's command.
type ExecOutcome struct {
	ExitCode         int
	Stdout           []byte
	Stderr           []byte
	Duration         float64 // seconds
	CollectionStatus SpanCollectionStatus
}

// ComparisonPredicate evaluates a numeric comparison against an observed
// count; each non-nil field becomes one rule in a ValidationReport.
type ComparisonPredicate struct {
	Eq  *int64 `toml:"eq"`
	GTE *int64 `toml:"gte"`
	LTE *int64 `toml:"lte"`
	GT  *int64 `toml:"gt"`
	LT  *int64 `toml:"lt"`
}

// Evaluate reports whether observed satisfies every set bound.
func (p ComparisonPredicate) Evaluate(observed int64) bool {
	if p.Eq != nil && observed != *p.Eq {
		return false
	}
	if p.GTE != nil && observed < *p.GTE {
		return false
	}
	if p.LTE != nil && observed > *p.LTE {
		return false
	}
	if p.GT != nil && observed <= *p.GT {
		return false
	}
	if p.LT != nil && observed >= *p.LT {
		return false
	}
	return true
}

// Describe renders a human-readable summary of the predicate's bounds,
// used in diagnostic messages.
func (p ComparisonPredicate) Describe() string {
	out := ""
	add := func(label string, v *int64) {
		if v == nil {
			return
		}
		if out != "" {
			out += ", "
		}
		out += label + " " + itoa(*v)
	}
	add("eq", p.Eq)
	add("gte", p.GTE)
	add("lte", p.LTE)
	add("gt", p.GT)
	add("lt", p.LT)
	return out
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// SpanExpect is one `expect.span` entry.
type SpanExpect struct {
	Name       string            `toml:"name"`
	Parent     string            `toml:"parent"`
	Kind       span.Kind         `toml:"kind"`
	AttrsAll   map[string]string `toml:"attrs_all"`
	AttrsAny   []string          `toml:"attrs_any"`
	EventsAny  []string          `toml:"events_any"`
	DurationMS *DurationBoundMS  `toml:"duration_ms"`
}

// DurationBoundMS is an optional {min, max} millisecond window.
type DurationBoundMS struct {
	Min *float64 `toml:"min"`
	Max *float64 `toml:"max"`
}

// GraphExpect is the `expect.graph` section.
type GraphExpect struct {
	MustInclude  [][2]string `toml:"must_include"`
	MustNotCross [][2]string `toml:"must_not_cross"`
	Acyclic      bool        `toml:"acyclic"`
}

// CountsExpect is the `expect.counts` section.
type CountsExpect struct {
	SpansTotal  *ComparisonPredicate           `toml:"spans_total"`
	EventsTotal *ComparisonPredicate           `toml:"events_total"`
	ErrorsTotal *ComparisonPredicate           `toml:"errors_total"`
	ByName      map[string]ComparisonPredicate `toml:"by_name"`
}

// OrderExpect is the `expect.order` section.
type OrderExpect struct {
	MustPrecede [][2]string `toml:"must_precede"`
	MustFollow  [][2]string `toml:"must_follow"`
}

// StatusExpect is the `expect.status` section.
type StatusExpect struct {
	All    span.Status            `toml:"all"`
	ByName map[string]span.Status `toml:"by_name"`
}

// WindowExpect is one `expect.window` entry.
type WindowExpect struct {
	Outer    string   `toml:"outer"`
	Contains []string `toml:"contains"`
}

// HermeticityExpect is the `expect.hermeticity` section.
type HermeticityExpect struct {
	NoExternalServices bool              `toml:"no_external_services"`
	ResourceAttrsMatch map[string]string `toml:"resource_attrs_must_match"`
	SpanAttrsForbid    []string          `toml:"span_attrs_forbid_keys"`
}

// Expectations aggregates every validator's configuration section.
type Expectations struct {
	Span        []SpanExpect      `toml:"span"`
	Graph       GraphExpect       `toml:"graph"`
	Counts      CountsExpect      `toml:"counts"`
	Order       OrderExpect       `toml:"order"`
	Status      StatusExpect      `toml:"status"`
	Window      []WindowExpect    `toml:"window"`
	Hermeticity HermeticityExpect `toml:"hermeticity"`
}

// Determinism is the `[determinism]` section.
type Determinism struct {
	FreezeClock string `toml:"freeze_clock"`
	Seed        int64  `toml:"seed"`
}

// Limits is the `[limits]` section; quantities follow Kubernetes-style
// resource strings (e.g. "500m", "256Mi"), parsed with
// k8s.io/apimachinery/pkg/api/resource, the same library the teacher
// already uses for EnvStruct quantity flags.
type Limits struct {
	CPU               string `toml:"cpu"`
	Memory            string `toml:"memory"`
	WorkerCount       int    `toml:"workers"`
	ScenarioTimeoutMS int64  `toml:"scenario_timeout_ms"`
	ServiceTimeoutMS  int64  `toml:"service_timeout_ms"`
	DrainWindowMS     int64  `toml:"drain_window_ms"`
}

// ReportConfig is the `[report]` section: output paths for each artifact.
type ReportConfig struct {
	JSON   string `toml:"json"`
	JUnit  string `toml:"junit"`
	Digest string `toml:"digest"`
}
