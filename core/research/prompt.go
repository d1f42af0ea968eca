package research

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var prompts = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

type searchPromptData struct {
	SearchParameters
	Target   string
	Currency string
}

// searchPrompt renders the simulation prompt. The worldwide market asks for
// a global analysis instead of naming a country.
func searchPrompt(p SearchParameters) (string, error) {
	data := searchPromptData{
		SearchParameters: p,
		Target:           p.Location,
		Currency:         CurrencyFor(p.Country).Code,
	}
	if p.Country == GlobalMarket {
		data.Target = "Análise Global"
	}
	return render("search.tmpl", data)
}

func analysisPrompt(query, summary string) (string, error) {
	return render("analysis.tmpl", struct{ Query, Summary string }{query, summary})
}

func render(name string, data any) (string, error) {
	var b strings.Builder
	if err := prompts.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
