// Package analyze converts a read-only document snapshot into an ActionGraph:
// typed element nodes plus the candidate interactions an automated agent
// could perform on them.
//
// The pipeline is a single depth-first traversal. For every visited element
// it evaluates visibility, sensitivity, type, and interactivity, synthesizes
// a re-locatable selector, scores the element's importance, and derives
// candidate actions. All per-element computations are memoized in a cache
// scoped to one extraction pass.
//
// # Fail-safe rules
//
// No malformed input aborts an extraction. Elements without tag information
// are skipped with their subtree, failed style lookups are treated as "not
// visible", unclassifiable elements fall back to OTHER, and selector
// generation always produces a structural path when nothing shorter is
// unique. The only fatal condition is a nil root handle, reported as
// ErrInvalidRoot before traversal begins.
//
// # Redaction
//
// Elements flagged sensitive never contribute a value to any action. The
// sensitivity heuristic is deliberately conservative: over-flagging is
// acceptable, under-flagging is not.
//
// # Concurrency
//
// An extraction call is synchronous and shares no mutable state with any
// other call; an Analyzer may be used from many goroutines as long as each
// call gets its own snapshot.
package analyze
