package validate

import (
	"fmt"
	"sort"

	"github.com/clnrm/clnrm/pkg/model"
	spanpkg "github.com/clnrm/clnrm/pkg/span"
)

// networkIndicatorKeys is the canonical list of attribute keys that
// signal a span touched something outside its container environment.
var networkIndicatorKeys = []string{
	"net.peer.name", "net.peer.ip", "net.peer.port",
	"http.host", "http.url",
	"db.connection_string",
	"rpc.service",
	"messaging.destination", "messaging.url",
}

// Hermeticity runs the §4.8.6 Hermeticity Validator: the network
// indicator sweep, resource-attribute pinning, and forbidden span
// attribute keys.
func Hermeticity(set *spanpkg.Set, expect model.HermeticityExpect) Section {
	b := newBuilder("hermeticity")

	if expect.NoExternalServices {
		ok := true
		var offender, key string
		for _, d := range set.Spans {
			for _, k := range networkIndicatorKeys {
				if _, present := d.Attributes[k]; present {
					ok, offender, key = false, d.SpanID, k
					break
				}
			}
			if !ok {
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("span %s carries network indicator attribute %q", offender, key)
		}
		b.add("hermeticity.no_external_services", ok, detail)
	}

	if len(expect.ResourceAttrsMatch) > 0 {
		keys := make([]string, 0, len(expect.ResourceAttrsMatch))
		for k := range expect.ResourceAttrsMatch {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		ok := true
		var offender string
		for _, d := range set.Spans {
			for _, k := range keys {
				want := expect.ResourceAttrsMatch[k]
				got, present := d.ResourceAttributes[k]
				if !present || normalizeScalar(got) != want {
					ok, offender = false, d.SpanID
					break
				}
			}
			if !ok {
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("span %s resource_attributes do not match required set", offender)
		}
		b.add("hermeticity.resource_attrs_must_match", ok, detail)
	}

	if len(expect.SpanAttrsForbid) > 0 {
		ok := true
		var offender, key string
		for _, d := range set.Spans {
			for _, k := range expect.SpanAttrsForbid {
				if _, present := d.Attributes[k]; present {
					ok, offender, key = false, d.SpanID, k
					break
				}
			}
			if !ok {
				break
			}
		}
		detail := ""
		if !ok {
			detail = fmt.Sprintf("span %s carries forbidden attribute %q", offender, key)
		}
		b.add("hermeticity.span_attrs_forbid_keys", ok, detail)
	}

	return b.section()
}
