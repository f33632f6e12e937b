package pack

import (
	"regexp"
	"strings"
)

// Record is one pack reconstructed from a rendered inventory report.
type Record struct {
	Name    string
	Details string // parenthesized detail clause, e.g. "(3 entities)"
	Section string // "behavior" or "resource"; "" before the first header
}

// A record line: optional indent, a dash, whitespace, a name token (no
// whitespace or open paren), then an optional parenthesized detail clause.
// Identifier sub-lines start with "/summon" and never match.
var recordRe = regexp.MustCompile(`^\s*-\s*([^\s(]+)(\s*\(.*\))?`)

// ParseReport reconstructs the pack records from a rendered inventory
// report. A current-section state machine transitions on the exact section
// header lines; any line that does not match the record grammar (identifier
// sub-lines, blanks, the missing-directory sentinels) is skipped. The first
// occurrence of a name wins; later duplicates are ignored.
func ParseReport(text string) []Record {
	var records []Record
	seen := map[string]bool{}
	section := ""

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "=== Behavior Packs ===") {
			section = "behavior"
			continue
		}
		if strings.Contains(line, "=== Resource Packs ===") {
			section = "resource"
			continue
		}

		m := recordRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		records = append(records, Record{
			Name:    name,
			Details: strings.TrimSpace(m[2]),
			Section: section,
		})
	}
	return records
}
