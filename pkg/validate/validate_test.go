package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
	"github.com/clnrm/clnrm/pkg/validate"
)

func TestGraph_MustInclude_Pass(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "parent", SpanID: "s1"},
		{Name: "child", SpanID: "s2", ParentSpanID: "s1"},
	}}
	expect := model.GraphExpect{MustInclude: [][2]string{{"parent", "child"}}, Acyclic: true}

	sec := validate.Graph(set, expect)
	assert.True(t, sec.Passed())
}

func TestGraph_MustInclude_Fail(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "parent", SpanID: "s1"},
		{Name: "unrelated", SpanID: "s3"},
		{Name: "child", SpanID: "s2", ParentSpanID: "s3"},
	}}
	expect := model.GraphExpect{MustInclude: [][2]string{{"parent", "child"}}, Acyclic: true}

	sec := validate.Graph(set, expect)
	assert.False(t, sec.Passed())
}

func TestGraph_SelfCycleFailsAcyclicity(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "loop", SpanID: "s1", ParentSpanID: "s1"},
	}}
	sec := validate.Graph(set, model.GraphExpect{Acyclic: true})
	assert.False(t, sec.Passed())
}

func TestCount_ByName_Fail(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "step", SpanID: "1"}, {Name: "step", SpanID: "2"}, {Name: "step", SpanID: "3"},
	}}
	eq := int64(4)
	expect := model.CountsExpect{ByName: map[string]model.ComparisonPredicate{"step": {Eq: &eq}}}

	sec := validate.Count(set, expect)
	require.False(t, sec.Passed())
	assert.Contains(t, sec.Rules[0].Detail, "expected eq 4, got 3")
}

func TestWindow_ViolationFails(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "outer", SpanID: "o", StartTimeN: 100_000_000, EndTimeN: 200_000_000},
		{Name: "inner", SpanID: "i", StartTimeN: 150_000_000, EndTimeN: 250_000_000},
	}}
	windows := []model.WindowExpect{{Outer: "outer", Contains: []string{"inner"}}}

	sec := validate.WindowOrder(set, windows, model.OrderExpect{})
	assert.False(t, sec.Passed())
}

func TestWindow_ZeroDurationChildPasses(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "outer", SpanID: "o", StartTimeN: 0, EndTimeN: 200},
		{Name: "inner", SpanID: "i", StartTimeN: 100, EndTimeN: 100},
	}}
	windows := []model.WindowExpect{{Outer: "outer", Contains: []string{"inner"}}}

	sec := validate.WindowOrder(set, windows, model.OrderExpect{})
	assert.True(t, sec.Passed())
}

func TestHermeticity_Breach(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "call", SpanID: "s1", Attributes: map[string]any{"http.url": "https://example.com"}},
	}}
	sec := validate.Hermeticity(set, model.HermeticityExpect{NoExternalServices: true})
	require.False(t, sec.Passed())
	assert.Contains(t, sec.Rules[0].Detail, "s1")
}

func TestHermeticity_CleanPasses(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{{Name: "call", SpanID: "s1"}}}
	sec := validate.Hermeticity(set, model.HermeticityExpect{NoExternalServices: true})
	assert.True(t, sec.Passed())
}

func TestRun_EmptyHermeticProof(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{{Name: "root", SpanID: "s1"}}}
	expect := model.Expectations{Hermeticity: model.HermeticityExpect{NoExternalServices: true}}

	report := validate.Run(set, expect)
	assert.Equal(t, validate.Pass, report.Verdict())
}

func TestSpan_ExistenceFailsOnEmptySet(t *testing.T) {
	set := &spanpkg.Set{}
	expect := model.Expectations{Span: []model.SpanExpect{{Name: "missing"}}}

	report := validate.Run(set, expect)
	assert.Equal(t, validate.Fail, report.Verdict())
	assert.Contains(t, report.Failures()[0].RuleID, "existence")
}

func TestStatus_ByNameGlob(t *testing.T) {
	set := &spanpkg.Set{Spans: []spanpkg.Data{
		{Name: "http.get", SpanID: "1", Status: spanpkg.StatusOK},
		{Name: "http.post", SpanID: "2", Status: spanpkg.StatusError},
	}}
	expect := model.StatusExpect{ByName: map[string]spanpkg.Status{"http.*": spanpkg.StatusOK}}

	sec := validate.Status(set, expect)
	assert.False(t, sec.Passed())
}
