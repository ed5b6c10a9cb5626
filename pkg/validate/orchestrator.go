package validate

import (
	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// Run executes the fixed validator pipeline in dependency order —
// existence (span) before graph, graph before window since both depend
// on resolved parent relations — and aggregates every section into one
// Report. No validator short-circuits another: every diagnostic is
// collected even after an earlier section has already failed.
func Run(set *spanpkg.Set, expect model.Expectations) Report {
	return Report{
		Sections: []Section{
			Span(set, expect.Span),
			Graph(set, expect.Graph),
			Count(set, expect.Counts),
			WindowOrder(set, expect.Window, expect.Order),
			Status(set, expect.Status),
			Hermeticity(set, expect.Hermeticity),
		},
	}
}
