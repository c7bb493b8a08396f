package usage

import (
	"regexp"
	"strings"
)

// matcher detects references to one export in page sources.
type matcher struct {
	pattern *regexp.Regexp
}

// newMatcher builds a matcher for name imported from alias.
// A page matches on an import of name from any module under alias, or on
// a whole-word occurrence of name anywhere in the file.
func newMatcher(name, alias string) *matcher {
	quotedName := regexp.QuoteMeta(name)
	quotedAlias := regexp.QuoteMeta(strings.TrimSuffix(alias, "/"))

	importExpr := `import\s*\{?\s*` + quotedName + `\s*\}?\s*from\s*['"]` + quotedAlias + `/[^'"]+['"]`
	wordExpr := `\b` + quotedName + `\b`

	return &matcher{pattern: regexp.MustCompile(importExpr + `|` + wordExpr)}
}

// matches reports whether content references the export.
func (m *matcher) matches(content string) bool {
	return m.pattern.MatchString(content)
}
