// Package chat implements the SEO assistant conversation. One session exists
// per language; each keeps its own transcript and system instruction. A
// failed exchange discards the session so the next message starts afresh.
package chat
