// Package inmemory provides a concurrency-safe, in-process implementation of
// [memory.Provider].
package inmemory
