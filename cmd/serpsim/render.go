package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leofalp/serpsim/core/cost"
	"github.com/leofalp/serpsim/core/research"
	"github.com/leofalp/serpsim/core/serp"
)

// styles are bound to one writer so colour is only emitted to terminals.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	ad      lipgloss.Style
	url     lipgloss.Style
	warning lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		ad:      r.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		url:     r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6B7280")).Padding(0, 1),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderResult prints a parsed page the way a results page reads: metrics,
// ads, organic results, summary, trend, sources and finally any issues.
func renderResult(w io.Writer, query string, r serp.ParsedResult) {
	s := newStyles(w)
	var b strings.Builder

	b.WriteString(s.title.Render(fmt.Sprintf("Resultados para %q", query)) + "\n\n")

	usd := r.CPC.USD
	if usd == "" {
		usd = "-"
	}
	metrics := fmt.Sprintf("%s %s\n%s %s / %s",
		s.label.Render("Volume de Busca:"), r.SearchVolume,
		s.label.Render("CPC Estimado:"), r.CPC.Local, usd)
	b.WriteString(s.box.Render(metrics) + "\n\n")

	if block, ok := r.Serp.Get(); ok {
		for _, ad := range block.Ads {
			writeListing(&b, s, ad, s.ad.Render("Anúncio · "))
		}
		for _, entry := range block.Organic {
			writeListing(&b, s, entry, "")
		}
		if block.Empty() {
			b.WriteString(s.muted.Render("Nenhum resultado listado.") + "\n\n")
		}
	}

	if r.Summary != "" {
		b.WriteString(s.label.Render("Resumo") + "\n" + r.Summary + "\n\n")
	}

	if points, ok := r.HistoricalData.Get(); ok && len(points) > 0 {
		b.WriteString(s.label.Render("Tendência") + "\n" + sparkline(points) + "\n")
		b.WriteString(s.muted.Render(points[0].Date+" → "+points[len(points)-1].Date) + "\n\n")
	}

	if len(r.Sources) > 0 {
		b.WriteString(s.label.Render("Fontes") + "\n")
		for i, src := range r.Sources {
			link := src.Web
			if link == nil {
				link = src.Maps
			}
			if link == nil {
				continue
			}
			fmt.Fprintf(&b, "%d. %s %s\n", i+1, link.Title, s.muted.Render(link.URI))
		}
		b.WriteString("\n")
	}

	for _, issue := range r.Issues {
		b.WriteString(s.warning.Render("! "+issue.String()) + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}

func writeListing(b *strings.Builder, s styles, e serp.ListingEntry, prefix string) {
	b.WriteString(prefix + s.url.Render(e.DisplayURL) + "\n")
	b.WriteString(s.title.Render(e.Title) + "\n")
	if e.Description != "" {
		b.WriteString(e.Description + "\n")
	}
	b.WriteString(s.muted.Render(e.DestinationURL) + "\n\n")
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline scales the values between their minimum and maximum.
func sparkline(points []serp.HistoricalPoint) string {
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		lo, hi = min(lo, p.Value), max(hi, p.Value)
	}
	out := make([]rune, len(points))
	for i, p := range points {
		idx := 0
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

func renderMarkets(w io.Writer) {
	s := newStyles(w)
	var b strings.Builder
	b.WriteString(s.title.Render("Mercados") + "\n")
	for _, m := range research.Markets() {
		c := research.CurrencyFor(m.Code)
		fmt.Fprintf(&b, "  %-3s %-20s %-15s %s\n", m.Code, m.Label, m.Domain, s.muted.Render(c.Code+" · "+c.Name))
	}
	b.WriteString("\n" + s.title.Render("Idiomas") + "\n")
	for _, l := range research.ResultLanguages() {
		fmt.Fprintf(&b, "  %-3s %s\n", l.Value, l.Label)
	}
	b.WriteString("\n" + s.title.Render("Dispositivos") + "\n")
	for _, d := range research.Devices() {
		fmt.Fprintf(&b, "  %-8s %s\n", d.Value, d.Label)
	}
	_, _ = io.WriteString(w, b.String())
}

func renderCost(w io.Writer, s cost.Summary) {
	if s.Calls == 0 {
		return
	}
	st := newStyles(w)
	fmt.Fprintln(w, st.muted.Render("Custo estimado: "+s.String()))
}
