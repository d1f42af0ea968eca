package serp

import (
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/serpsim/core/parse"
)

const historicalLabel = "**Dados Históricos (JSON):**"

// rawPoint uses pointers so that missing keys can be told apart from zero values.
type rawPoint struct {
	Date  *string  `json:"date"`
	Value *float64 `json:"value"`
}

// parseHistory locates the labelled JSON array in the full text and decodes it.
// The result is Absent when the label or a closed array after it is missing,
// and Empty when a captured array cannot be decoded. In Repair mode an
// unclosed array is handed to the repairer instead of being treated as absent.
func parseHistory(text string, mode parse.Mode) (Field[[]HistoricalPoint], []Issue) {
	_, after, found := strings.Cut(text, historicalLabel)
	if !found {
		return AbsentField[[]HistoricalPoint](), []Issue{{Kind: AbsentSection, Section: SectionHistory, Detail: "label not found"}}
	}

	payload, ok := captureArray(after)
	if !ok {
		start := strings.IndexByte(after, '[')
		switch {
		case start < 0:
			return AbsentField[[]HistoricalPoint](), []Issue{{Kind: AbsentSection, Section: SectionHistory, Detail: "no array after label"}}
		case mode != parse.Repair:
			return AbsentField[[]HistoricalPoint](), []Issue{{Kind: AbsentSection, Section: SectionHistory, Detail: "unclosed array"}}
		}
		payload = strings.TrimSpace(after[start:])
	}

	points, err := decodeHistory(payload, mode)
	if err != nil {
		return EmptyField([]HistoricalPoint{}), []Issue{{Kind: MalformedPayload, Section: SectionHistory, Detail: err.Error()}}
	}
	return PresentField(points), nil
}

func decodeHistory(payload string, mode parse.Mode) ([]HistoricalPoint, error) {
	raw, err := parse.DecodeJSON[[]rawPoint](payload, mode)
	if err != nil {
		return nil, err
	}

	points := make([]HistoricalPoint, 0, len(raw))
	for i, p := range raw {
		if p.Date == nil || p.Value == nil {
			return nil, fmt.Errorf("point %d: date and value are required", i)
		}
		if _, err := time.Parse(time.DateOnly, *p.Date); err != nil {
			return nil, fmt.Errorf("point %d: invalid date %q", i, *p.Date)
		}
		points = append(points, HistoricalPoint{Date: *p.Date, Value: *p.Value})
	}
	return points, nil
}

// captureArray returns the text from the first '[' in s through its matching
// ']'. Brackets inside JSON string literals are ignored.
func captureArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
