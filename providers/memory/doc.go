// Package memory defines the Provider interface for chat transcripts.
// The chat service appends every user and assistant turn and replays the
// transcript on the next request. Read methods return errors so a durable
// store can surface failures. The in-process implementation lives in
// [github.com/leofalp/serpsim/providers/memory/inmemory].
package memory
