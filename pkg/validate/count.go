package validate

import (
	"fmt"
	"sort"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// Count runs the §4.8.3 Count Validator: spans_total, events_total,
// errors_total, and by_name cardinality predicates.
func Count(set *spanpkg.Set, expect model.CountsExpect) Section {
	b := newBuilder("count")

	if expect.SpansTotal != nil {
		observed := int64(len(set.Spans))
		ok := expect.SpansTotal.Evaluate(observed)
		b.add("count.spans_total", ok, detailFor("spans_total", observed, *expect.SpansTotal, ok))
	}

	if expect.EventsTotal != nil {
		var observed int64
		for _, d := range set.Spans {
			observed += int64(len(d.Events))
		}
		ok := expect.EventsTotal.Evaluate(observed)
		b.add("count.events_total", ok, detailFor("events_total", observed, *expect.EventsTotal, ok))
	}

	if expect.ErrorsTotal != nil {
		var observed int64
		for _, d := range set.Spans {
			if d.Status == spanpkg.StatusError {
				observed++
			}
		}
		ok := expect.ErrorsTotal.Evaluate(observed)
		b.add("count.errors_total", ok, detailFor("errors_total", observed, *expect.ErrorsTotal, ok))
	}

	names := make([]string, 0, len(expect.ByName))
	for name := range expect.ByName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pred := expect.ByName[name]
		observed := int64(len(set.ByName(name)))
		ok := pred.Evaluate(observed)
		b.add(fmt.Sprintf("count.by_name[%s]", name), ok, detailForNamed(name, observed, pred, ok))
	}

	return b.section()
}

func detailFor(field string, observed int64, pred model.ComparisonPredicate, ok bool) string {
	if ok {
		return ""
	}
	return fmt.Sprintf("count %s: expected %s, got %d", field, pred.Describe(), observed)
}

func detailForNamed(name string, observed int64, pred model.ComparisonPredicate, ok bool) string {
	if ok {
		return ""
	}
	return fmt.Sprintf("count by_name %s: expected %s, got %d", name, pred.Describe(), observed)
}
