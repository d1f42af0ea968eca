package serp

import (
	"testing"

	"github.com/leofalp/serpsim/core/parse"
)

func TestParseHistory(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		mode         parse.Mode
		wantPresence Presence
		wantPoints   []HistoricalPoint
		wantKind     IssueKind
	}{
		{
			name:         "label absent",
			text:         "**Volume de Busca:** 10",
			wantPresence: Absent,
			wantKind:     AbsentSection,
		},
		{
			name:         "not json",
			text:         "**Dados Históricos (JSON):** [not-json]",
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
		{
			name:         "single point",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":10}]`,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{{Date: "2024-01-01", Value: 10}},
		},
		{
			name:         "multi-line array in code fence",
			text:         "**Dados Históricos (JSON):**\n```json\n[\n  {\"date\": \"2023-10-01\", \"value\": 88},\n  {\"date\": \"2023-11-01\", \"value\": 92.5}\n]\n```\n",
			wantPresence: Present,
			wantPoints: []HistoricalPoint{
				{Date: "2023-10-01", Value: 88},
				{Date: "2023-11-01", Value: 92.5},
			},
		},
		{
			name:         "trailing bracket text is not captured",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":1}] [nota]`,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{{Date: "2024-01-01", Value: 1}},
		},
		{
			name:         "bracket inside string literal",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":1,"note":"]"}]`,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{{Date: "2024-01-01", Value: 1}},
		},
		{
			name:         "label without array",
			text:         "**Dados Históricos (JSON):** indisponível",
			wantPresence: Absent,
			wantKind:     AbsentSection,
		},
		{
			name:         "label then prose with no bracket",
			text:         "**Dados Históricos (JSON):**\nNão há dados suficientes para este termo.\n",
			wantPresence: Absent,
			wantKind:     AbsentSection,
		},
		{
			name:         "unclosed array is absent in strict mode",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":10}`,
			wantPresence: Absent,
			wantKind:     AbsentSection,
		},
		{
			name:         "missing value key",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01"}]`,
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
		{
			name:         "value as string",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":"10"}]`,
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
		{
			name:         "bad date format",
			text:         `**Dados Históricos (JSON):** [{"date":"01/02/2024","value":3}]`,
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
		{
			name:         "empty array is present",
			text:         `**Dados Históricos (JSON):** []`,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{},
		},
		{
			name:         "trailing comma fails strict",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":10},]`,
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
		{
			name:         "trailing comma repaired",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":10},]`,
			mode:         parse.Repair,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{{Date: "2024-01-01", Value: 10}},
		},
		{
			name:         "truncated array repaired",
			text:         `**Dados Históricos (JSON):** [{"date":"2024-01-01","value":10}`,
			mode:         parse.Repair,
			wantPresence: Present,
			wantPoints:   []HistoricalPoint{{Date: "2024-01-01", Value: 10}},
		},
		{
			name:         "not json stays empty with repair",
			text:         "**Dados Históricos (JSON):** [not-json]",
			mode:         parse.Repair,
			wantPresence: Empty,
			wantPoints:   []HistoricalPoint{},
			wantKind:     MalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, issues := parseHistory(tt.text, tt.mode)
			if got.Presence() != tt.wantPresence {
				t.Fatalf("parseHistory() presence = %s, want %s", got.Presence(), tt.wantPresence)
			}

			points, _ := got.Get()
			if tt.wantPresence != Absent && points == nil {
				t.Errorf("parseHistory() points must be non-nil when the label is present")
			}
			if len(points) != len(tt.wantPoints) {
				t.Fatalf("parseHistory() points = %v, want %v", points, tt.wantPoints)
			}
			for i := range points {
				if points[i] != tt.wantPoints[i] {
					t.Errorf("parseHistory() points[%d] = %+v, want %+v", i, points[i], tt.wantPoints[i])
				}
			}

			if tt.wantKind == "" {
				if len(issues) != 0 {
					t.Errorf("parseHistory() unexpected issues: %v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].Kind != tt.wantKind {
				t.Errorf("parseHistory() issues = %v, want one %s", issues, tt.wantKind)
			}
		})
	}
}

func TestCaptureArray(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: " [1, [2, 3]] tail ]", want: "[1, [2, 3]]", wantOK: true},
		{input: `["a\"]", 1]`, want: `["a\"]", 1]`, wantOK: true},
		{input: "[1, 2", wantOK: false},
		{input: "no array", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := captureArray(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("captureArray() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
