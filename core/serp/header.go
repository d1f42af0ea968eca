package serp

import "strings"

const (
	searchVolumeLabel = "**Volume de Busca:**"
	cpcLabel          = "**CPC Estimado:**"
	cpcSeparator      = "|"
)

// labeledValue returns the trimmed remainder of the first line of region that
// starts with label. Indentation before the label is ignored.
func labeledValue(region, label string) (string, bool) {
	for line := range strings.Lines(region) {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), label); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func parseSearchVolume(header string) (string, []Issue) {
	value, ok := labeledValue(header, searchVolumeLabel)
	if !ok {
		return Unavailable, []Issue{{Kind: AbsentSection, Section: SectionSearchVolume, Detail: "label not found"}}
	}
	return value, nil
}

func parseCPC(header string) (CpcEstimate, []Issue) {
	raw, ok := labeledValue(header, cpcLabel)
	if !ok {
		return CpcEstimate{Local: Unavailable}, []Issue{{Kind: AbsentSection, Section: SectionCPC, Detail: "label not found"}}
	}
	cpc, ok := splitCPC(raw)
	if !ok {
		return cpc, []Issue{{Kind: MalformedComposite, Section: SectionCPC, Detail: raw}}
	}
	return cpc, nil
}

// splitCPC splits "LOCAL | USD". Anything but exactly two parts keeps the
// whole value as Local and reports ok=false.
func splitCPC(raw string) (CpcEstimate, bool) {
	parts := strings.Split(raw, cpcSeparator)
	if len(parts) != 2 {
		return CpcEstimate{Local: raw}, false
	}
	return CpcEstimate{
		Local: strings.TrimSpace(parts[0]),
		USD:   strings.TrimSpace(parts[1]),
	}, true
}
