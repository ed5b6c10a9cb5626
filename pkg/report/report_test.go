package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/report"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
	"github.com/clnrm/clnrm/pkg/validate"
)

func sampleSet() *spanpkg.Set {
	return &spanpkg.Set{
		ScenarioName: "boots",
		Spans: []spanpkg.Data{
			{Name: "root", SpanID: "s1", StartTimeN: 0, EndTimeN: 1000, Attributes: map[string]any{"b": 2, "a": 1}},
			{Name: "child", SpanID: "s2", ParentSpanID: "s1", StartTimeN: 100, EndTimeN: 200},
		},
	}
}

func TestDigest_Deterministic(t *testing.T) {
	run := report.Run{Version: "1", Scenarios: []report.ScenarioResult{
		{Name: "boots", Verdict: validate.Pass, Spans: sampleSet(), FreezeClock: "2025-01-01T00:00:00Z"},
	}}

	d1 := report.Digest(run)
	d2 := report.Digest(run)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

func TestDigest_IgnoresSpanIDChurnUnderFreeze(t *testing.T) {
	setA := sampleSet()
	setB := sampleSet()
	setB.Spans[0].SpanID = "different-trace-root"
	setB.Spans[1].ParentSpanID = "different-trace-root"
	setB.Spans[1].SpanID = "different-trace-child"

	runA := report.Run{Scenarios: []report.ScenarioResult{{Name: "boots", Spans: setA, FreezeClock: "x"}}}
	runB := report.Run{Scenarios: []report.ScenarioResult{{Name: "boots", Spans: setB, FreezeClock: "x"}}}

	assert.Equal(t, report.Digest(runA), report.Digest(runB))
}

func TestJSON_StableSchema(t *testing.T) {
	run := report.Run{Version: "1", Scenarios: []report.ScenarioResult{
		{Name: "boots", Verdict: validate.Pass, Spans: sampleSet()},
	}}
	out, err := report.JSON(run)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name": "boots"`)
	assert.Contains(t, string(out), `"total": 1`)
}

func TestJUnit_FailureCarriesDiagnostics(t *testing.T) {
	run := report.Run{Version: "1", Scenarios: []report.ScenarioResult{
		{
			Name:    "boots",
			Verdict: validate.Fail,
			Validators: validate.Report{Sections: []validate.Section{
				{Validator: "count", Rules: []validate.Rule{{RuleID: "count.spans_total", Status: validate.Fail, Detail: "expected eq 4, got 3"}}},
			}},
		},
	}}
	out, err := report.JUnit(run)
	require.NoError(t, err)
	assert.Contains(t, string(out), "expected eq 4, got 3")
	assert.Contains(t, string(out), `failures="1"`)
}

func TestMarkdown_IncludesSummaryAndFailureDetail(t *testing.T) {
	run := report.Run{Version: "1", Scenarios: []report.ScenarioResult{
		{
			Name:    "boots",
			Verdict: validate.Fail,
			Validators: validate.Report{Sections: []validate.Section{
				{Validator: "count", Rules: []validate.Rule{{RuleID: "count.spans_total", Status: validate.Fail, Detail: "expected eq 4, got 3"}}},
			}},
		},
		{Name: "shuts_down_cleanly", Verdict: validate.Pass},
	}}

	out := report.Markdown(run)
	assert.Contains(t, out, "Test Run Report")
	assert.Contains(t, out, "boots")
	assert.Contains(t, out, "count.spans_total")
	assert.Contains(t, out, "expected eq 4, got 3")
	assert.Contains(t, out, "All validator rules passed")
}

func TestBuildSummary(t *testing.T) {
	run := report.Run{Scenarios: []report.ScenarioResult{
		{Verdict: validate.Pass}, {Verdict: validate.Fail}, {Verdict: validate.Skipped},
	}}
	sum := run.BuildSummary()
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Passed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1, sum.Skipped)
}
