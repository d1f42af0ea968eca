package gemini

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/leofalp/serpsim/providers/ai"
)

// convertEntryPoint turns the rendered search suggestion widget into
// Markdown plus the list of suggested queries. The raw HTML is always kept;
// conversion failures only leave the derived fields empty.
func convertEntryPoint(html string) *ai.SearchEntryPoint {
	ep := &ai.SearchEntryPoint{HTML: html}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		// The widget ships its own <style>; it is noise once converted.
		doc.Find("style, script").Remove()

		doc.Find("a.chip").Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				ep.Suggestions = append(ep.Suggestions, text)
			}
		})

		if cleaned, err := doc.Html(); err == nil {
			html = cleaned
		}
	}

	if md, err := htmltomarkdown.ConvertString(html); err == nil {
		ep.Markdown = strings.TrimSpace(md)
	}

	return ep
}
