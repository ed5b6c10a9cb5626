package validate

import (
	"fmt"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// WindowOrder runs the §4.8.4 Window and Order Validator: containment
// windows and must_precede/must_follow ordering.
func WindowOrder(set *spanpkg.Set, windows []model.WindowExpect, order model.OrderExpect) Section {
	b := newBuilder("window_order")

	for _, w := range windows {
		outers := set.ByName(w.Outer)
		if len(outers) == 0 {
			b.add(fmt.Sprintf("window[%s]", w.Outer), false, fmt.Sprintf("no span named %q to use as window", w.Outer))
			continue
		}
		outer := outers[0]

		ok := true
		var detail string
		for _, innerName := range w.Contains {
			for _, inner := range set.ByName(innerName) {
				if inner.StartTimeN < outer.StartTimeN || inner.EndTimeN > outer.EndTimeN {
					ok = false
					detail = fmt.Sprintf("span %s [%d,%d] is not contained within %s [%d,%d]",
						inner.Name, inner.StartTimeN, inner.EndTimeN, outer.Name, outer.StartTimeN, outer.EndTimeN)
					break
				}
			}
			if !ok {
				break
			}
		}
		b.add(fmt.Sprintf("window[%s]", w.Outer), ok, detail)
	}

	for _, pair := range order.MustPrecede {
		a, bName := pair[0], pair[1]
		ok, detail := precedeCheck(set, a, bName)
		b.add(fmt.Sprintf("order.must_precede[%s,%s]", a, bName), ok, detail)
	}
	for _, pair := range order.MustFollow {
		a, bName := pair[0], pair[1]
		ok, detail := followCheck(set, a, bName)
		b.add(fmt.Sprintf("order.must_follow[%s,%s]", a, bName), ok, detail)
	}

	return b.section()
}

// precedeCheck resolves ambiguity via earliest-start for both names, per
// the spec's "earliest-start for precede" rule.
func precedeCheck(set *spanpkg.Set, aName, bName string) (bool, string) {
	as, bs := set.ByName(aName), set.ByName(bName)
	if len(as) == 0 || len(bs) == 0 {
		return false, fmt.Sprintf("must_precede: missing span named %q or %q", aName, bName)
	}
	aEarliest := earliestStart(as)
	bEarliest := earliestStart(bs)
	if aEarliest.StartTimeN < bEarliest.StartTimeN {
		return true, ""
	}
	return false, fmt.Sprintf("%s (start %d) does not precede %s (start %d)", aName, aEarliest.StartTimeN, bName, bEarliest.StartTimeN)
}

// followCheck is must_precede's reverse (a.start_time > b.start_time),
// resolving ambiguity by picking the latest-end candidate for each name
// per the spec's "latest-end for follow" rule.
func followCheck(set *spanpkg.Set, aName, bName string) (bool, string) {
	as, bs := set.ByName(aName), set.ByName(bName)
	if len(as) == 0 || len(bs) == 0 {
		return false, fmt.Sprintf("must_follow: missing span named %q or %q", aName, bName)
	}
	aCandidate := latestEnd(as)
	bCandidate := latestEnd(bs)
	if aCandidate.StartTimeN > bCandidate.StartTimeN {
		return true, ""
	}
	return false, fmt.Sprintf("%s (start %d) does not follow %s (start %d)", aName, aCandidate.StartTimeN, bName, bCandidate.StartTimeN)
}

func earliestStart(spans []spanpkg.Data) spanpkg.Data {
	best := spans[0]
	for _, s := range spans[1:] {
		if s.StartTimeN < best.StartTimeN {
			best = s
		}
	}
	return best
}

func latestEnd(spans []spanpkg.Data) spanpkg.Data {
	best := spans[0]
	for _, s := range spans[1:] {
		if s.EndTimeN > best.EndTimeN {
			best = s
		}
	}
	return best
}
