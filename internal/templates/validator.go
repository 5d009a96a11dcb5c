package templates

import (
	"regexp"
	"sort"
)

// tokenRegex matches a $KEY$ placeholder token. Keys are upper-case
// identifiers so PHP variables such as $this are never treated as tokens.
var tokenRegex = regexp.MustCompile(`\$([A-Z][A-Z0-9_]*)\$`)

// Tokens returns the distinct placeholder keys referenced by text, sorted.
func Tokens(text string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range tokenRegex.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	sort.Strings(keys)
	return keys
}

// Unresolved returns the keys referenced by text that p has no value for, sorted.
func Unresolved(text string, p Placeholders) []string {
	var missing []string
	for _, k := range Tokens(text) {
		if _, ok := p[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
