package usage

import (
	"fmt"
	"strings"
)

// notUsedLine replaces the usage list of an export no page references.
const notUsedLine = "- Not used in any pages"

// RenderMarkdown renders record as a Markdown report titled "<name> Usage".
// Each export gets a "## <Export>" section listing relative links to its
// pages, sections being separated by a blank line.
func RenderMarkdown(record *Record, name string) ([]byte, error) {
	if err := checkRecord(record); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Usage\n\n", name)

	for i, entry := range record.Entries() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n", entry.Name)

		if len(entry.Pages) == 0 {
			b.WriteString(notUsedLine + "\n")
			continue
		}
		for _, page := range entry.Pages {
			fmt.Fprintf(&b, "  - [./%s](./%s)\n", page, page)
		}
	}

	return []byte(b.String()), nil
}

// checkRecord rejects rendering before an analysis produced any export.
func checkRecord(record *Record) error {
	if record == nil {
		return ErrNotAnalyzed
	}
	if record.Len() == 0 {
		return ErrEmptyRecord
	}
	return nil
}
