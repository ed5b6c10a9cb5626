package report

import (
	"fmt"
	"strings"

	"github.com/clnrm/clnrm/pkg/md"
	"github.com/clnrm/clnrm/pkg/validate"
)

// Markdown renders a human-readable summary of a run report, suitable for
// pasting into a PR comment or CI job summary.
func Markdown(r Run) string {
	summary := r.BuildSummary()

	var b strings.Builder
	b.WriteString(md.Header(1, "Test Run Report"))
	b.WriteString("\n\n")
	b.WriteString(md.UList(
		fmt.Sprintf("%s %d", md.Bold("Total:"), summary.Total),
		fmt.Sprintf("%s %d", md.Bold("Passed:"), summary.Passed),
		fmt.Sprintf("%s %d", md.Bold("Failed:"), summary.Failed),
		fmt.Sprintf("%s %d", md.Bold("Skipped:"), summary.Skipped),
		fmt.Sprintf("%s %.1fms", md.Bold("Duration:"), summary.DurationMS),
	))
	b.WriteString("\n")

	for _, sc := range r.Scenarios {
		b.WriteString(md.Header(2, fmt.Sprintf("%s %s", verdictGlyph(sc.Verdict), sc.Name)))
		b.WriteString("\n\n")

		if sc.FreezeClock != "" {
			b.WriteString(md.Italics(fmt.Sprintf("clock frozen at %s", sc.FreezeClock)))
			b.WriteString("\n\n")
		}

		failures := sc.Validators.Failures()
		if len(failures) == 0 {
			b.WriteString("All validator rules passed.\n\n")
			continue
		}

		items := make([]string, len(failures))
		for i, rule := range failures {
			items[i] = fmt.Sprintf("%s: %s", md.Code(rule.RuleID), rule.Detail)
		}
		b.WriteString(md.Details(
			fmt.Sprintf("%d failing rule(s)", len(failures)),
			md.UList(items...),
			false,
		))
		b.WriteString("\n\n")
	}

	return b.String()
}

func verdictGlyph(v validate.RuleStatus) string {
	switch v {
	case validate.Pass:
		return "✅"
	case validate.Skipped:
		return "➡️"
	default:
		return "❌"
	}
}
