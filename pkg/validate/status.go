package validate

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// Status runs the §4.8.5 Status Validator: the blanket `all` rule and
// glob-keyed `by_name` rules.
func Status(set *spanpkg.Set, expect model.StatusExpect) Section {
	b := newBuilder("status")

	if expect.All != "" {
		ok := true
		var offender string
		for _, d := range set.Spans {
			if d.Status != expect.All {
				ok = false
				offender = d.SpanID
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("span %s has status != %s", offender, expect.All)
		}
		b.add("status.all", ok, detail)
	}

	globs := make([]string, 0, len(expect.ByName))
	for g := range expect.ByName {
		globs = append(globs, g)
	}
	sort.Strings(globs)
	for _, pattern := range globs {
		want := expect.ByName[pattern]
		g, err := glob.Compile(pattern)
		if err != nil {
			b.skip(fmt.Sprintf("status.by_name[%s]", pattern), "invalid glob pattern")
			continue
		}
		ok := true
		var offender string
		for _, d := range set.Spans {
			if g.Match(d.Name) && d.Status != want {
				ok = false
				offender = d.SpanID
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("span %s matched %q but status != %s", offender, pattern, want)
		}
		b.add(fmt.Sprintf("status.by_name[%s]", pattern), ok, detail)
	}

	return b.section()
}
