// Package slogobs provides an observability.Provider implementation backed by
// log/slog. Spans, counters and histograms are emitted as debug records;
// log calls map onto slog levels with an extra TRACE level below DEBUG.
//
// Output is either a compact single-line format or JSON lines. The default
// format and level are read from SERPSIM_LOG_FORMAT and SERPSIM_LOG_LEVEL.
package slogobs
