// Package browser supplies live document snapshots through Playwright.
//
// The package is the bridge between a real rendered page and the analysis
// core: a Session owns one Playwright browser/context/page, and Snapshot
// evaluates a single script in the page that serializes the full element
// tree (tags, attributes, text, geometry, computed style, click listener
// presence) into an immutable dom.Node tree. Analysis then runs entirely
// outside the browser on that copy, so page mutation after the snapshot
// cannot affect results.
//
// # Session Lifecycle
//
//  1. Create: SessionManager.StartSession launches a named browser session
//  2. Use: Navigate, WaitForIdle, Snapshot
//  3. Close: CloseSession (or Shutdown for everything at once)
//
// Snapshot implicitly waits for network idle first; readiness gating is the
// session's job, never the analyzer's.
package browser
