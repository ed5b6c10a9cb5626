package report

import (
	"encoding/xml"
	"strings"

	"github.com/clnrm/clnrm/pkg/validate"
)

type junitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	TimeS     float64         `xml:"time,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name    string        `xml:"name,attr"`
	TimeS   float64       `xml:"time,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
	Skipped *junitSkipped `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

type junitSkipped struct{}

// JUnit serializes r to JUnit XML: one testsuite per run, one testcase
// per scenario, failing scenarios carrying the aggregated validator
// diagnostics as the <failure> message.
func JUnit(r Run) ([]byte, error) {
	suite := junitTestSuite{Name: r.Version}

	for _, sc := range r.Scenarios {
		tc := junitTestCase{Name: sc.Name, TimeS: sc.DurationMS / 1000}
		suite.Tests++
		suite.TimeS += tc.TimeS

		switch sc.Verdict {
		case "fail":
			suite.Failures++
			tc.Failure = &junitFailure{
				Message: "validation failed",
				Body:    diagnosticBody(sc.Validators.Failures()),
			}
		case "skipped":
			suite.Skipped++
			tc.Skipped = &junitSkipped{}
		}

		suite.TestCases = append(suite.TestCases, tc)
	}

	out, err := xml.MarshalIndent(suite, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func diagnosticBody(rules []validate.Rule) string {
	var sb strings.Builder
	for _, r := range rules {
		sb.WriteString(r.RuleID)
		sb.WriteString(": ")
		sb.WriteString(r.Detail)
		sb.WriteString("\n")
	}
	return sb.String()
}
