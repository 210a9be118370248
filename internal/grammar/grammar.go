// Package grammar checks German text for spelling and grammar errors. The
// primary checker shells out to the LanguageTool engine through the Java
// runtime; when that runtime is missing the capability degrades to a small
// rule-table spell checker.
package grammar

// Issue is a single problem found in the input text.
type Issue struct {
	Message      string
	Offset       int
	Length       int
	Category     string
	RuleID       string
	Replacements []string
}

// Report is the payload returned for a grammar check request.
type Report struct {
	Original  string
	Corrected string
	Issues    []Issue
	Limited   bool // set by the fallback spell checker
}

// HasChanges reports whether anything was flagged.
func (r *Report) HasChanges() bool {
	return len(r.Issues) > 0 || r.Corrected != r.Original
}
