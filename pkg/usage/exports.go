package usage

import (
	"regexp"
	"strings"
)

var (
	exportListRegex  = regexp.MustCompile(`export\s+\{([^}]+)\}`)
	exportAliasRegex = regexp.MustCompile(`^\S+\s+as\s+(\S+)$`)
)

// ExtractExports returns the capitalized names of the first export list of content.
// The second result is false when content has no export list at all.
// "A as B" entries export B; other entries are kept verbatim after trimming.
// A name listed twice is returned once.
func ExtractExports(content string) ([]string, bool) {
	match := exportListRegex.FindStringSubmatch(content)
	if match == nil {
		return nil, false
	}

	var names []string
	seen := make(map[string]bool)
	for _, raw := range strings.Split(match[1], ",") {
		name := strings.TrimSpace(raw)
		if alias := exportAliasRegex.FindStringSubmatch(name); alias != nil {
			name = alias[1]
		}
		if isComponentName(name) && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names, true
}

// isComponentName reports whether name starts with an uppercase ASCII letter.
func isComponentName(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
