// Package dom defines the read-only snapshot capability boundary between the
// analysis core and whatever host environment supplies page data.
//
// The analysis pipeline depends only on the Element interface: tag name,
// attributes, text, ordered children, geometry, computed style, and event
// listener presence. Adapters (a live Playwright page, a statically parsed
// HTML document) build an immutable Node tree satisfying this interface
// before analysis begins, so the core never observes concurrent mutation and
// needs no locking.
package dom
