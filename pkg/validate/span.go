package validate

import (
	"fmt"
	"strings"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// Span runs the §4.8.1 Span Validator: existence, parent, kind, attrs.all,
// attrs.any, events.any, and duration_ms bounds for every expect.span entry.
func Span(set *spanpkg.Set, expects []model.SpanExpect) Section {
	b := newBuilder("span")

	for _, exp := range expects {
		candidates := set.ByName(exp.Name)
		if len(candidates) == 0 {
			b.add(ruleID(exp.Name, "existence"), false, fmt.Sprintf("no span named %q was collected", exp.Name))
			continue
		}
		b.add(ruleID(exp.Name, "existence"), true, "")

		if exp.Parent != "" {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				parent, found := set.Parent(d)
				if !found {
					return false, fmt.Sprintf("span %s has no resolvable parent", d.SpanID)
				}
				if parent.Name != exp.Parent {
					return false, fmt.Sprintf("span %s parent is %q, want %q", d.SpanID, parent.Name, exp.Parent)
				}
				return true, ""
			})
			b.add(ruleID(exp.Name, "parent"), ok, detail)
		}

		if exp.Kind != "" {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				if d.Kind != exp.Kind {
					return false, fmt.Sprintf("span %s kind is %q, want %q", d.SpanID, d.Kind, exp.Kind)
				}
				return true, ""
			})
			b.add(ruleID(exp.Name, "kind"), ok, detail)
		}

		if len(exp.AttrsAll) > 0 {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				for k, want := range exp.AttrsAll {
					got, present := d.Attributes[k]
					if !present || normalizeScalar(got) != want {
						return false, fmt.Sprintf("span %s attribute %q = %v, want %q", d.SpanID, k, got, want)
					}
				}
				return true, ""
			})
			b.add(ruleID(exp.Name, "attrs.all"), ok, detail)
		}

		if len(exp.AttrsAny) > 0 {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				for _, pattern := range exp.AttrsAny {
					k, v, found := strings.Cut(pattern, "=")
					if !found {
						continue
					}
					if got, present := d.Attributes[k]; present && normalizeScalar(got) == v {
						return true, ""
					}
				}
				return false, fmt.Sprintf("span %s matched none of %v", d.SpanID, exp.AttrsAny)
			})
			b.add(ruleID(exp.Name, "attrs.any"), ok, detail)
		}

		if len(exp.EventsAny) > 0 {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				for _, ev := range d.Events {
					for _, want := range exp.EventsAny {
						if ev.Name == want {
							return true, ""
						}
					}
				}
				return false, fmt.Sprintf("span %s has no event named any of %v", d.SpanID, exp.EventsAny)
			})
			b.add(ruleID(exp.Name, "events.any"), ok, detail)
		}

		if exp.DurationMS != nil {
			ok, detail := anySpanSatisfies(candidates, func(d spanpkg.Data) (bool, string) {
				ms := d.DurationMS()
				if exp.DurationMS.Min != nil && ms < *exp.DurationMS.Min {
					return false, fmt.Sprintf("span %s duration %.3fms < min %.3fms", d.SpanID, ms, *exp.DurationMS.Min)
				}
				if exp.DurationMS.Max != nil && ms > *exp.DurationMS.Max {
					return false, fmt.Sprintf("span %s duration %.3fms > max %.3fms", d.SpanID, ms, *exp.DurationMS.Max)
				}
				return true, ""
			})
			b.add(ruleID(exp.Name, "duration_ms"), ok, detail)
		}
	}

	return b.section()
}

// anySpanSatisfies implements the "each rule checks if any matching span
// satisfies the sub-rule" resolution policy, citing the first failing
// candidate's detail when none do.
func anySpanSatisfies(candidates []spanpkg.Data, check func(spanpkg.Data) (bool, string)) (bool, string) {
	var firstDetail string
	for i, d := range candidates {
		ok, detail := check(d)
		if ok {
			return true, ""
		}
		if i == 0 {
			firstDetail = detail
		}
	}
	return false, firstDetail
}

func ruleID(spanName, dimension string) string {
	return fmt.Sprintf("span[%s].%s", spanName, dimension)
}

// normalizeScalar renders a decoded JSON/TOML scalar as a string for
// attribute equality comparisons, so e.g. the attribute value 200 and the
// configured "200" compare equal.
func normalizeScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
