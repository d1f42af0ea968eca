package research

import (
	"fmt"
	"strings"
)

// SearchParameters describe one simulated search.
type SearchParameters struct {
	Query string `json:"query"`
	// Location is the market label shown in the prompt.
	Location     string `json:"location"`
	Device       string `json:"device"`
	Language     string `json:"language"`
	Country      string `json:"country"`
	GoogleDomain string `json:"googleDomain"`
}

// UserLocation biases maps retrieval towards the searcher.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultParameters returns the simulator defaults: Brazil, desktop,
// Portuguese results.
func DefaultParameters(query string) SearchParameters {
	p, _ := ForMarket(query, "br")
	p.Device = "desktop"
	p.Language = "pt"
	return p
}

// ForMarket fills country, location and domain from the market table.
// Device and language are left for the caller.
func ForMarket(query, country string) (SearchParameters, error) {
	m, ok := LookupMarket(country)
	if !ok {
		return SearchParameters{}, fmt.Errorf("%w: unknown market %q", ErrInvalidParameters, country)
	}
	return SearchParameters{Query: query, Location: m.Label, Country: m.Code, GoogleDomain: m.Domain}, nil
}

// Validate checks that the query is set and that device and language are
// among the supported options. Empty device or language are accepted.
func (p SearchParameters) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return fmt.Errorf("%w: empty query", ErrInvalidParameters)
	}
	if p.Device != "" && !hasOption(devices, p.Device) {
		return fmt.Errorf("%w: unknown device %q", ErrInvalidParameters, p.Device)
	}
	if p.Language != "" && !hasOption(resultLanguages, p.Language) {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidParameters, p.Language)
	}
	return nil
}
