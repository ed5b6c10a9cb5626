// Package span defines the collected-span data model: SpanData, the
// per-scenario SpanSet, and the SpanGraph derived from parent/child
// relations. Nothing in this package depends on any particular collection
// transport; pkg/collector is what fills a SpanSet in.
package span

import "sort"

// Kind is the closed set of OpenTelemetry span kinds the engine recognizes.
type Kind string

// The closed set of span kinds.
const (
	KindInternal Kind = "Internal"
	KindServer   Kind = "Server"
	KindClient   Kind = "Client"
	KindProducer Kind = "Producer"
	KindConsumer Kind = "Consumer"
)

// Status is the closed set of span statuses.
type Status string

// The closed set of span statuses.
const (
	StatusUnset Status = "Unset"
	StatusOK    Status = "Ok"
	StatusError Status = "Error"
)

// Event is a single timestamped event attached to a span.
type Event struct {
	Name       string
	TimestampN uint64
	Attributes map[string]any
}

// Data is one collected span.
type Data struct {
	Name               string
	TraceID            string
	SpanID             string
	ParentSpanID       string // empty when the span is a root
	StartTimeN         uint64
	EndTimeN           uint64
	Kind               Kind
	Status             Status
	Attributes         map[string]any
	Events             []Event
	ResourceAttributes map[string]any
}

// DurationMS returns the span's wall duration in milliseconds.
func (d Data) DurationMS() float64 {
	if d.EndTimeN < d.StartTimeN {
		return 0
	}
	return float64(d.EndTimeN-d.StartTimeN) / 1e6
}

// HasParent reports whether the span declares a parent.
func (d Data) HasParent() bool { return d.ParentSpanID != "" }

// CollectionMode records how a SpanSet was gathered.
type CollectionMode string

// The closed set of collection modes.
const (
	ModeInMemory CollectionMode = "in-memory"
	ModeStdoutND CollectionMode = "stdout_ndjson"
	ModeOTLP     CollectionMode = "otlp"
)

// Set is the ordered sequence of spans emitted by a single scenario.
type Set struct {
	ScenarioName   string
	Spans          []Data
	CollectionMode CollectionMode
	Truncated      bool
	ParseWarnings  []string
	BytesScanned   int64 // raw bytes read from the collection transport, diagnostic only
}

// ByName returns every span with the given name, in collection order.
func (s *Set) ByName(name string) []Data {
	var out []Data
	for _, d := range s.Spans {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// ByID returns the span with the given span_id, if present.
func (s *Set) ByID(id string) (Data, bool) {
	for _, d := range s.Spans {
		if d.SpanID == id {
			return d, true
		}
	}
	return Data{}, false
}

// Parent resolves the parent of d within the set, if any.
func (s *Set) Parent(d Data) (Data, bool) {
	if !d.HasParent() {
		return Data{}, false
	}
	return s.ByID(d.ParentSpanID)
}

// Children returns every span whose parent_span_id equals id.
func (s *Set) Children(id string) []Data {
	var out []Data
	for _, d := range s.Spans {
		if d.ParentSpanID == id {
			out = append(out, d)
		}
	}
	return out
}

// Graph is the directed graph induced by parent/child span relations.
type Graph struct {
	Nodes []string    // span ids
	Edges [][2]string // [parent span id, child span id]
}

// BuildGraph derives the SpanGraph from a SpanSet's parent relations.
func BuildGraph(s *Set) Graph {
	g := Graph{}
	for _, d := range s.Spans {
		g.Nodes = append(g.Nodes, d.SpanID)
	}
	for _, d := range s.Spans {
		if d.HasParent() {
			if _, ok := s.ByID(d.ParentSpanID); ok {
				g.Edges = append(g.Edges, [2]string{d.ParentSpanID, d.SpanID})
			}
		}
	}
	return g
}

// Acyclic reports whether the graph has no directed cycles, returning the
// node ids forming the first discovered cycle when it does not.
func (g Graph) Acyclic() (ok bool, cycle []string) {
	adj := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(g.Nodes))
	var stack []string

	var visit func(n string) []string
	visit = func(n string) []string {
		color[n] = gray
		stack = append(stack, n)
		for _, m := range adj[n] {
			switch color[m] {
			case white:
				if cyc := visit(m); cyc != nil {
					return cyc
				}
			case gray:
				// found a back-edge; extract the cycle from the stack
				idx := len(stack) - 1
				for idx >= 0 && stack[idx] != m {
					idx--
				}
				if idx < 0 {
					return []string{m, n}
				}
				cyc := append([]string{}, stack[idx:]...)
				return append(cyc, m)
			}
		}
		color[n] = black
		stack = stack[:len(stack)-1]
		return nil
	}

	sorted := append([]string{}, g.Nodes...)
	sort.Strings(sorted)
	for _, n := range sorted {
		if color[n] == white {
			if cyc := visit(n); cyc != nil {
				return false, cyc
			}
		}
	}
	return true, nil
}
