package serp

import (
	"fmt"
	"strings"
)

const (
	adPrefix       = "Ad:"
	organicPrefix  = "Organic:"
	fieldDelimiter = "|||"
	rowArity       = 4
)

// parseListings collects the Ad and Organic rows of a SERP region. Rows that
// do not have exactly four fields are skipped and reported.
func parseListings(region string) (SerpBlock, []Issue) {
	block := SerpBlock{Ads: []ListingEntry{}, Organic: []ListingEntry{}}
	var issues []Issue

	lineNo := 0
	for line := range strings.Lines(region) {
		lineNo++
		line = strings.TrimSpace(line)

		var target *[]ListingEntry
		var body string
		if rest, ok := strings.CutPrefix(line, adPrefix); ok {
			target, body = &block.Ads, rest
		} else if rest, ok := strings.CutPrefix(line, organicPrefix); ok {
			target, body = &block.Organic, rest
		} else {
			continue
		}

		entry, fields := parseRow(body)
		if fields != rowArity {
			issues = append(issues, Issue{
				Kind:    MalformedRow,
				Section: SectionSerp,
				Line:    lineNo,
				Detail:  fmt.Sprintf("expected %d fields, got %d", rowArity, fields),
			})
			continue
		}
		*target = append(*target, entry)
	}

	return block, issues
}

// parseRow splits a row body on the field delimiter. The entry is only
// meaningful when the returned field count equals rowArity.
func parseRow(body string) (ListingEntry, int) {
	parts := strings.Split(strings.TrimSpace(body), fieldDelimiter)
	if len(parts) != rowArity {
		return ListingEntry{}, len(parts)
	}
	return ListingEntry{
		Title:          strings.TrimSpace(parts[0]),
		DisplayURL:     strings.TrimSpace(parts[1]),
		DestinationURL: strings.TrimSpace(parts[2]),
		Description:    strings.TrimSpace(parts[3]),
	}, rowArity
}
