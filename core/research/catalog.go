package research

import "slices"

// Market is a target country with the Google domain used to search it.
type Market struct {
	Code   string `json:"code" yaml:"code"`
	Label  string `json:"label" yaml:"label"`
	Domain string `json:"domain" yaml:"domain"`
}

// Currency is the local currency the CPC estimate is quoted in.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Option is a selectable value with a display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GlobalMarket is the worldwide pseudo-market.
const GlobalMarket = "ww"

var markets = []Market{
	{Code: "br", Label: "Brasil", Domain: "google.com.br"},
	{Code: "mx", Label: "México", Domain: "google.com.mx"},
	{Code: "co", Label: "Colômbia", Domain: "google.com.co"},
	{Code: "es", Label: "Espanha", Domain: "google.es"},
	{Code: "cl", Label: "Chile", Domain: "google.cl"},
	{Code: "pe", Label: "Peru", Domain: "google.com.pe"},
	{Code: "ar", Label: "Argentina", Domain: "google.com.ar"},
	{Code: "us", Label: "Estados Unidos", Domain: "google.com"},
	{Code: "pt", Label: "Portugal", Domain: "google.pt"},
	{Code: GlobalMarket, Label: "Mundo (Worldwide)", Domain: "google.com"},
}

var currencies = map[string]Currency{
	"br": {Code: "BRL", Name: "Real Brasileiro"},
	"mx": {Code: "MXN", Name: "Peso Mexicano"},
	"co": {Code: "COP", Name: "Peso Colombiano"},
	"es": {Code: "EUR", Name: "Euro"},
	"cl": {Code: "CLP", Name: "Peso Chileno"},
	"pe": {Code: "PEN", Name: "Sol Peruano"},
	"ar": {Code: "ARS", Name: "Peso Argentino"},
	"us": {Code: "USD", Name: "Dólar Americano"},
	"pt": {Code: "EUR", Name: "Euro"},
	"ww": {Code: "USD", Name: "Dólar Americano"},
}

var resultLanguages = []Option{
	{Value: "pt", Label: "Português"},
	{Value: "en", Label: "Inglês"},
	{Value: "es", Label: "Espanhol"},
	{Value: "de", Label: "Alemão"},
	{Value: "fr", Label: "Francês"},
}

var devices = []Option{
	{Value: "all", Label: "Todos"},
	{Value: "desktop", Label: "Desktop"},
	{Value: "mobile", Label: "Mobile"},
	{Value: "tablet", Label: "Tablet"},
}

// Markets returns the supported markets in display order.
func Markets() []Market { return slices.Clone(markets) }

// LookupMarket finds a market by its country code.
func LookupMarket(code string) (Market, bool) {
	i := slices.IndexFunc(markets, func(m Market) bool { return m.Code == code })
	if i < 0 {
		return Market{}, false
	}
	return markets[i], true
}

// CurrencyFor returns the currency of a market, falling back to the
// worldwide one for unknown codes.
func CurrencyFor(country string) Currency {
	if c, ok := currencies[country]; ok {
		return c
	}
	return currencies[GlobalMarket]
}

// ResultLanguages lists the languages results can be requested in.
func ResultLanguages() []Option { return slices.Clone(resultLanguages) }

// Devices lists the devices a search can be simulated on.
func Devices() []Option { return slices.Clone(devices) }

func hasOption(options []Option, value string) bool {
	return slices.ContainsFunc(options, func(o Option) bool { return o.Value == value })
}
