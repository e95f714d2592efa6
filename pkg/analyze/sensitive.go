package analyze

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/entrhq/pagegraph/pkg/dom"
)

// sensitiveKeywords is the fixed vocabulary gating redaction. Matching is
// case-insensitive substring containment, so "new-password", "authToken" and
// "data-ssn" all flag. Over-matching (e.g. "key" inside "keyboard") is
// accepted; the heuristic must never under-flag.
var sensitiveKeywords = []string{
	"password",
	"credit-card",
	"ssn",
	"secret",
	"token",
	"key",
	"auth",
}

// sensitiveClassGlobs matches class tokens against the same vocabulary.
var sensitiveClassGlobs = compileSensitiveGlobs()

func compileSensitiveGlobs() []glob.Glob {
	globs := make([]glob.Glob, len(sensitiveKeywords))
	for i, kw := range sensitiveKeywords {
		globs[i] = glob.MustCompile("*" + kw + "*")
	}
	return globs
}

// IsSensitive reports whether an element likely holds confidential data,
// based on its attribute names, attribute values, and class tokens.
func IsSensitive(el dom.Element) bool {
	for _, attr := range el.Attributes() {
		if containsSensitiveKeyword(attr.Name) || containsSensitiveKeyword(attr.Value) {
			return true
		}
		if strings.EqualFold(attr.Name, "class") {
			for _, token := range strings.Fields(attr.Value) {
				if matchesSensitiveClass(token) {
					return true
				}
			}
		}
	}
	return false
}

func containsSensitiveKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func matchesSensitiveClass(token string) bool {
	lower := strings.ToLower(token)
	for _, g := range sensitiveClassGlobs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}
