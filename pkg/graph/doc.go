// Package graph defines the ActionGraph data model: the typed elements of an
// analyzed page (nodes) and the candidate interactions an automated agent
// could perform on them (edges).
//
// An ActionGraph is produced fresh per extraction pass and is fully
// serializable to JSON for downstream consumers such as an action executor,
// which re-locates elements by selector and element id.
//
// # Invariants
//
// Every graph produced by this module satisfies:
//
//  1. Every Action.ElementID references exactly one ElementNode.ID
//  2. ElementNode.ID values are unique within one graph
//  3. Scores and confidences lie in [0, 1]
//  4. Actions derived from sensitive elements carry no value
//  5. Zero-area elements are never marked visible
//  6. Children preserve document order
//
// Validate checks the mechanically checkable subset (1-3) and is intended for
// tests and for consumers that receive graphs over a serialization boundary.
package graph
