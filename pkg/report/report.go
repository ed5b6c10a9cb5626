// Package report implements the reporting artifacts: the stable JSON
// schema, JUnit XML, a Markdown summary, and the SHA-256 digest over a
// normalized span tree.
package report

import (
	"encoding/json"
	"sort"

	"github.com/clnrm/clnrm/pkg/digest"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
	"github.com/clnrm/clnrm/pkg/validate"
)

// ScenarioResult is one scenario's contribution to a run report.
type ScenarioResult struct {
	Name        string
	Verdict     validate.RuleStatus
	DurationMS  float64
	Validators  validate.Report
	Spans       *spanpkg.Set
	FreezeClock string // non-empty when determinism.freeze_clock was set
}

// Summary aggregates counts across every scenario in a run.
type Summary struct {
	Total      int     `json:"total"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	Skipped    int     `json:"skipped"`
	DurationMS float64 `json:"duration_ms"`
}

// Run is the top-level run report handed to every artifact writer.
type Run struct {
	Version   string
	Scenarios []ScenarioResult
}

// BuildSummary aggregates the run's scenario verdicts.
func (r Run) BuildSummary() Summary {
	s := Summary{Total: len(r.Scenarios)}
	for _, sc := range r.Scenarios {
		s.DurationMS += sc.DurationMS
		switch sc.Verdict {
		case validate.Pass:
			s.Passed++
		case validate.Fail:
			s.Failed++
		case validate.Skipped:
			s.Skipped++
		}
	}
	return s
}

// jsonScenario mirrors the stable wire schema for one scenario entry.
type jsonScenario struct {
	Name       string          `json:"name"`
	Verdict    string          `json:"verdict"`
	DurationMS float64         `json:"duration_ms"`
	Validators []jsonValidator `json:"validators"`
	Spans      []jsonSpan      `json:"spans"`
}

type jsonValidator struct {
	Name  string     `json:"name"`
	Rules []jsonRule `json:"rules"`
}

type jsonRule struct {
	RuleID string `json:"rule_id"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type jsonSpan struct {
	Name         string `json:"name"`
	SpanID       string `json:"span_id"`
	ParentSpanID string `json:"parent_span_id,omitempty"`
	StartTimeNS  uint64 `json:"start_time_ns"`
	EndTimeNS    uint64 `json:"end_time_ns"`
	Status       string `json:"status"`
}

type jsonDoc struct {
	Version   string         `json:"version"`
	Summary   Summary        `json:"summary"`
	Scenarios []jsonScenario `json:"scenarios"`
}

// JSON serializes r to the stable schema, with mappings in sorted-key
// order to preserve diff stability (Go's encoding/json already emits
// struct fields in declaration order and map keys sorted, which this
// schema relies on rather than fighting).
func JSON(r Run) ([]byte, error) {
	doc := jsonDoc{Version: r.Version, Summary: r.BuildSummary()}

	names := make([]string, len(r.Scenarios))
	byName := make(map[string]ScenarioResult, len(r.Scenarios))
	for i, sc := range r.Scenarios {
		names[i] = sc.Name
		byName[sc.Name] = sc
	}
	// Scenarios are emitted in declared order (r.Scenarios is already
	// ordered by the scheduler); only attribute maps need key-sorting.
	for _, sc := range r.Scenarios {
		js := jsonScenario{Name: sc.Name, Verdict: string(sc.Verdict), DurationMS: sc.DurationMS}
		for _, sec := range sc.Validators.Sections {
			jv := jsonValidator{Name: sec.Validator}
			for _, rule := range sec.Rules {
				jv.Rules = append(jv.Rules, jsonRule{RuleID: rule.RuleID, Status: string(rule.Status), Detail: rule.Detail})
			}
			js.Validators = append(js.Validators, jv)
		}
		if sc.Spans != nil {
			for _, d := range sc.Spans.Spans {
				js.Spans = append(js.Spans, jsonSpan{
					Name: d.Name, SpanID: d.SpanID, ParentSpanID: d.ParentSpanID,
					StartTimeNS: d.StartTimeN, EndTimeNS: d.EndTimeN, Status: string(d.Status),
				})
			}
		}
		doc.Scenarios = append(doc.Scenarios, js)
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Digest computes the SHA-256 over the normalized span tree of every
// scenario in the run, concatenated in declared order.
func Digest(r Run) string {
	var parts []string
	for _, sc := range r.Scenarios {
		if sc.Spans == nil {
			continue
		}
		parts = append(parts, NormalizeSpanTree(sc.Spans, sc.FreezeClock != ""))
	}
	joined := ""
	for i, p := range parts {
		if i > 0 {
			joined += "\x1e"
		}
		joined += p
	}
	return digest.Hash(joined)
}

// sortAttrKeys returns the sorted key list of an attribute map, used by
// NormalizeSpanTree to keep attribute serialization key-order stable.
func sortAttrKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
