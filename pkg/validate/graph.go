package validate

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// Graph runs the §4.8.2 Graph Validator: must_include edges,
// must_not_cross exclusions, and acyclicity over the SpanGraph induced
// from parent_span_id relations.
func Graph(set *spanpkg.Set, expect model.GraphExpect) Section {
	b := newBuilder("graph")

	nameEdges := namedEdges(set)

	for _, pair := range expect.MustInclude {
		parentName, childName := pair[0], pair[1]
		ok := false
		for _, e := range nameEdges {
			if e[0] == parentName && e[1] == childName {
				ok = true
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("no edge %s -> %s found among collected spans", parentName, childName)
		}
		b.add(fmt.Sprintf("graph.must_include[%s->%s]", parentName, childName), ok, detail)
	}

	for _, pair := range expect.MustNotCross {
		globA, errA := glob.Compile(pair[0])
		globB, errB := glob.Compile(pair[1])
		if errA != nil || errB != nil {
			b.skip(fmt.Sprintf("graph.must_not_cross[%s,%s]", pair[0], pair[1]), "invalid glob pattern")
			continue
		}
		var offending string
		for _, e := range nameEdges {
			if (globA.Match(e[0]) && globB.Match(e[1])) || (globA.Match(e[1]) && globB.Match(e[0])) {
				offending = fmt.Sprintf("%s -> %s", e[0], e[1])
				break
			}
		}
		b.add(fmt.Sprintf("graph.must_not_cross[%s,%s]", pair[0], pair[1]), offending == "", offending)
	}

	graph := spanpkg.BuildGraph(set)
	if expect.Acyclic {
		ok, cycle := graph.Acyclic()
		detail := ""
		if !ok {
			detail = fmt.Sprintf("cycle detected: %s", strings.Join(cycle, " -> "))
		}
		b.add("graph.acyclic", ok, detail)
	}

	return b.section()
}

// namedEdges resolves each SpanGraph edge's span ids back to span names,
// since must_include/must_not_cross are expressed in terms of names.
func namedEdges(set *spanpkg.Set) [][2]string {
	var out [][2]string
	for _, d := range set.Spans {
		if !d.HasParent() {
			continue
		}
		parent, ok := set.ByID(d.ParentSpanID)
		if !ok {
			continue
		}
		out = append(out, [2]string{parent.Name, d.Name})
	}
	return out
}
