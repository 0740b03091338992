package skills

import (
	"regexp"
	"sort"
	"strings"
)

type termPattern struct {
	term string
	re   *regexp.Regexp
}

var patterns = buildPatterns(vocabulary)

// Normalize canonicalizes a skill term: lowercase with collapsed whitespace.
func Normalize(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// Extract returns the vocabulary terms present in text as delimited
// whole-word matches, sorted ascending. Empty input yields an empty set.
// "java" inside "javascript" does not count.
func Extract(text string) []string {
	found := make([]string, 0, 8)
	if strings.TrimSpace(text) == "" {
		return found
	}
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if p.re.MatchString(lower) {
			found = append(found, p.term)
		}
	}
	sort.Strings(found)
	return found
}

func buildPatterns(terms []string) []termPattern {
	out := make([]termPattern, 0, len(terms))
	for _, raw := range terms {
		term := Normalize(raw)
		out = append(out, termPattern{term: term, re: compileTerm(term)})
	}
	return out
}

// compileTerm builds a whole-word pattern for term. RE2's \b only delimits
// word characters, so terms ending in "+" or "#" (c++, c#) get explicit
// non-word delimiters instead.
func compileTerm(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	left := `\b`
	if !isWordChar(rune(term[0])) {
		left = `(?:^|[^\w])`
	}
	right := `\b`
	if !isWordChar(rune(term[len(term)-1])) {
		right = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(left + quoted + right)
}

func isWordChar(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}
