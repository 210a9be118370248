// Package capability tracks which optional backends are usable and routes
// requests to a primary or fallback implementation. Backends are probed once
// at startup; a failed probe degrades the capability instead of aborting, and
// every result discloses which mode served it.
package capability
