// Package serp parses the semi-formatted market-research answer produced by a
// generative model into a [ParsedResult].
//
// The text is split into regions by literal marker pairs (---SERP_START---,
// ---SUMMARY_START---, ...). A header region carries the search volume and the
// composite CPC estimate, the SERP region carries "Ad:" and "Organic:" rows
// with four "|||"-separated fields each, and a labelled JSON array carries the
// historical trend series.
//
// Parsing never fails. Missing regions, rows with the wrong arity, composite
// values without exactly one separator and undecodable payloads all degrade
// to fallback values and are reported in [ParsedResult.Issues]. Optional
// collections use the tagged [Field] type so that "never present" and
// "present but unusable" stay distinguishable.
//
// [Parse] is a pure function: it keeps no state between calls and is safe to
// call from any number of goroutines.
package serp
