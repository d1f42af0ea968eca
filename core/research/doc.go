// Package research runs the SERP simulation workflow against a generative
// model: it builds the simulation prompt for a market, sends it with search
// and maps grounding, and hands the reply to [serp.Parse]. It also produces
// the follow-up SEO analysis and the image edits offered next to a result.
//
// The market, currency, language and device tables mirror the options the
// simulator offers; see [Markets] and [CurrencyFor].
package research
