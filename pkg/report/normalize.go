package report

import (
	"fmt"
	"sort"
	"strings"

	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// NormalizeSpanTree implements the §4.9 digest normalization: strip
// trace_id/span_id (replaced by rank-indices), replace absolute
// timestamps with offsets from the root span when frozen is true, sort
// children by name then normalized start time, sort attribute maps by
// key, and serialize to a canonical compact form.
func NormalizeSpanTree(set *spanpkg.Set, frozen bool) string {
	roots := rootsOf(set)
	sort.Slice(roots, func(i, j int) bool { return sortKey(roots[i]) < sortKey(roots[j]) })

	rankOf := assignRanks(set, roots)

	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range roots {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNode(&sb, set, r, r.StartTimeN, frozen, rankOf)
	}
	sb.WriteByte(']')
	return sb.String()
}

func rootsOf(set *spanpkg.Set) []spanpkg.Data {
	var roots []spanpkg.Data
	for _, d := range set.Spans {
		if !d.HasParent() {
			roots = append(roots, d)
			continue
		}
		if _, ok := set.ByID(d.ParentSpanID); !ok {
			roots = append(roots, d)
		}
	}
	return roots
}

func sortKey(d spanpkg.Data) string {
	return fmt.Sprintf("%s\x00%020d", d.Name, d.StartTimeN)
}

// assignRanks walks the tree in normalized (name, start-time) order and
// assigns each span id a stable rank-index, replacing trace/span ids in
// the digest.
func assignRanks(set *spanpkg.Set, roots []spanpkg.Data) map[string]int {
	rank := map[string]int{}
	next := 0
	var walk func(d spanpkg.Data)
	walk = func(d spanpkg.Data) {
		rank[d.SpanID] = next
		next++
		children := set.Children(d.SpanID)
		sort.Slice(children, func(i, j int) bool { return sortKey(children[i]) < sortKey(children[j]) })
		for _, c := range children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return rank
}

func writeNode(sb *strings.Builder, set *spanpkg.Set, d spanpkg.Data, rootStart uint64, frozen bool, rankOf map[string]int) {
	fmt.Fprintf(sb, `{"rank":%d,"name":%q,"kind":%q,"status":%q`, rankOf[d.SpanID], d.Name, d.Kind, d.Status)

	if frozen {
		fmt.Fprintf(sb, `,"start_off":%d,"end_off":%d`, d.StartTimeN-rootStart, d.EndTimeN-rootStart)
	} else {
		fmt.Fprintf(sb, `,"start":%d,"end":%d`, d.StartTimeN, d.EndTimeN)
	}

	sb.WriteString(`,"attrs":{`)
	keys := sortAttrKeys(d.Attributes)
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, "%q:%v", k, d.Attributes[k])
	}
	sb.WriteString("}")

	children := set.Children(d.SpanID)
	sort.Slice(children, func(i, j int) bool { return sortKey(children[i]) < sortKey(children[j]) })
	sb.WriteString(`,"children":[`)
	for i, c := range children {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNode(sb, set, c, rootStart, frozen, rankOf)
	}
	sb.WriteString("]}")
}
