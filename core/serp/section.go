package serp

import "strings"

const (
	serpStartMarker    = "---SERP_START---"
	serpEndMarker      = "---SERP_END---"
	summaryStartMarker = "---SUMMARY_START---"
	summaryEndMarker   = "---SUMMARY_END---"
)

// extractSection returns the trimmed text between the first start marker and
// the first end marker that follows it. ok is false when either is missing.
func extractSection(text, start, end string) (string, bool) {
	_, after, found := strings.Cut(text, start)
	if !found {
		return "", false
	}
	body, _, found := strings.Cut(after, end)
	if !found {
		return "", false
	}
	return strings.TrimSpace(body), true
}

// headerRegion returns the text preceding the SERP region, or preceding the
// summary region when there is no SERP marker.
func headerRegion(text string) string {
	if i := strings.Index(text, serpStartMarker); i >= 0 {
		return text[:i]
	}
	if i := strings.Index(text, summaryStartMarker); i >= 0 {
		return text[:i]
	}
	return text
}
