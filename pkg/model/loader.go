package model

import (
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/clnrm/clnrm/pkg/clnrmerr"
	"github.com/clnrm/clnrm/pkg/span"
)

// knownTopLevelKeys is used only to decide which unrecognized keys get a
// forward-compatibility log line; it does not reject anything.
var knownTopLevelKeys = map[string]bool{
	"meta": true, "otel": true, "service": true, "scenario": true,
	"expect": true, "determinism": true, "limits": true, "report": true,
	"vars": true,
}

// Load parses rendered TOML into a TestConfig and validates the
// structural invariants from the data model: every scenario.service must
// reference a defined service, enum fields must match their closed sets,
// and an acyclic graph expectation may not be paired with a cyclic
// must_include set.
func Load(renderedTOML string, log *slog.Logger) (*TestConfig, error) {
	if log == nil {
		log = slog.Default()
	}

	var raw map[string]any
	if err := toml.Unmarshal([]byte(renderedTOML), &raw); err != nil {
		return nil, tomlSyntaxError(err)
	}
	for k := range raw {
		if !knownTopLevelKeys[k] {
			log.Info("ignoring unrecognized top-level key", "key", k)
		}
	}

	var cfg TestConfig
	if err := toml.Unmarshal([]byte(renderedTOML), &cfg); err != nil {
		return nil, tomlSyntaxError(err)
	}
	if !acyclicKeyPresent(raw) {
		cfg.Expect.Graph.Acyclic = true
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// acyclicKeyPresent reports whether the rendered document explicitly set
// expect.graph.acyclic, so Load can apply the documented default (true)
// only when the author left it unset.
func acyclicKeyPresent(raw map[string]any) bool {
	expect, ok := raw["expect"].(map[string]any)
	if !ok {
		return false
	}
	graph, ok := expect["graph"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = graph["acyclic"]
	return ok
}

func tomlSyntaxError(err error) error {
	return clnrmerr.New(clnrmerr.KindConfig, "parsing TOML", err)
}

// validate enforces §3/§4.3's structural invariants over an already
// TOML-decoded TestConfig.
func validate(cfg *TestConfig) error {
	for _, sc := range cfg.Scenario {
		if sc.Service == "" {
			continue
		}
		if _, ok := cfg.Service[sc.Service]; !ok {
			return clnrmerr.OrphanReference(sc.Name, sc.Service)
		}
	}

	for id, svc := range cfg.Service {
		switch svc.Plugin {
		case PluginGenericContainer, PluginDatabaseLike, PluginCustom, "":
		default:
			return clnrmerr.Newf(clnrmerr.KindConfig, nil, "service %q: unrecognized plugin kind %q", id, svc.Plugin)
		}
	}

	for _, se := range cfg.Expect.Span {
		switch se.Kind {
		case span.KindInternal, span.KindServer, span.KindClient, span.KindProducer, span.KindConsumer, "":
		default:
			return clnrmerr.Newf(clnrmerr.KindConfig, nil, "expect.span %q: unrecognized kind %q", se.Name, se.Kind)
		}
	}

	switch cfg.Expect.Status.All {
	case span.StatusOK, span.StatusError, span.StatusUnset, "":
	default:
		return clnrmerr.Newf(clnrmerr.KindConfig, nil, "expect.status.all: unrecognized status %q", cfg.Expect.Status.All)
	}
	for glob, st := range cfg.Expect.Status.ByName {
		switch st {
		case span.StatusOK, span.StatusError, span.StatusUnset:
		default:
			return clnrmerr.Newf(clnrmerr.KindConfig, nil, "expect.status.by_name[%q]: unrecognized status %q", glob, st)
		}
	}

	if cfg.Expect.Graph.Acyclic {
		if cyc := findMustIncludeCycle(cfg.Expect.Graph.MustInclude); cyc != "" {
			return clnrmerr.Newf(clnrmerr.KindConfig, nil, "expect.graph.acyclic=true conflicts with cyclic must_include edges: %s", cyc)
		}
	}

	if cfg.Limits != nil {
		if _, err := cfg.Limits.ParsedCPU(); err != nil {
			return clnrmerr.New(clnrmerr.KindConfig, "limits.cpu", err)
		}
		if _, err := cfg.Limits.ParsedMemory(); err != nil {
			return clnrmerr.New(clnrmerr.KindConfig, "limits.memory", err)
		}
	}

	return nil
}

// ParsedCPU parses the `cpu` quantity string with the same
// k8s.io/apimachinery quantity grammar the teacher's EnvStruct quantity
// flags use ("500m", "2", "1500m"). An empty string parses to the zero
// quantity.
func (l Limits) ParsedCPU() (resource.Quantity, error) {
	if l.CPU == "" {
		return resource.Quantity{}, nil
	}
	return resource.ParseQuantity(l.CPU)
}

// ParsedMemory parses the `memory` quantity string ("256Mi", "1Gi").
func (l Limits) ParsedMemory() (resource.Quantity, error) {
	if l.Memory == "" {
		return resource.Quantity{}, nil
	}
	return resource.ParseQuantity(l.Memory)
}

// findMustIncludeCycle reports a cycle among declared must_include edges
// (a config-time check distinct from the runtime acyclicity validator,
// which operates on actual collected spans).
func findMustIncludeCycle(edges [][2]string) string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)

	var path []string
	var visit func(n string) string
	visit = func(n string) string {
		color[n] = gray
		path = append(path, n)
		for _, m := range adj[n] {
			switch color[m] {
			case white:
				if cyc := visit(m); cyc != "" {
					return cyc
				}
			case gray:
				return fmt.Sprintf("%v -> %s", path, m)
			}
		}
		color[n] = black
		path = path[:len(path)-1]
		return ""
	}

	for n := range adj {
		if color[n] == white {
			if cyc := visit(n); cyc != "" {
				return cyc
			}
		}
	}
	return ""
}
