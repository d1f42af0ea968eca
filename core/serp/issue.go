package serp

import "fmt"

// IssueKind classifies a non-fatal parsing problem.
type IssueKind string

const (
	// AbsentSection: a marker pair or label was not found.
	AbsentSection IssueKind = "absent_section"
	// MalformedRow: an Ad/Organic row did not split into exactly four fields.
	MalformedRow IssueKind = "malformed_row"
	// MalformedComposite: the CPC value did not contain exactly one "|".
	MalformedComposite IssueKind = "malformed_composite"
	// MalformedPayload: the historical JSON array could not be decoded.
	MalformedPayload IssueKind = "malformed_payload"
)

// Section names used in [Issue.Section].
const (
	SectionSearchVolume = "searchVolume"
	SectionCPC          = "cpc"
	SectionSerp         = "serp"
	SectionSummary      = "summary"
	SectionHistory      = "historicalData"
)

// Issue records one fallback decision taken while parsing.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Section string    `json:"section"`
	// Line is the 1-based line inside the section, or 0 when not applicable.
	Line   int    `json:"line,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s in %s (line %d): %s", i.Kind, i.Section, i.Line, i.Detail)
	}
	if i.Detail == "" {
		return fmt.Sprintf("%s in %s", i.Kind, i.Section)
	}
	return fmt.Sprintf("%s in %s: %s", i.Kind, i.Section, i.Detail)
}

// CountIssues returns how many issues of the given kind are in issues.
func CountIssues(issues []Issue, kind IssueKind) int {
	n := 0
	for _, issue := range issues {
		if issue.Kind == kind {
			n++
		}
	}
	return n
}
