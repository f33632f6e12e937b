package pack

import (
	"fmt"
	"strings"
)

// Installed is one custom pack found during a scan. It is constructed fresh
// on every inventory request and never persisted.
type Installed struct {
	Name        string
	EntityCount int
	Identifiers []string // resource packs only; empty for behavior packs
}

// Section holds the packs of one kind, or marks the kind's root directory
// as missing.
type Section struct {
	Kind    Kind
	Missing bool
	Packs   []Installed
}

// Report is a point-in-time projection of the pack directories, always two
// sections in Behavior, Resource order.
type Report struct {
	Sections []Section
}

// Render serializes the report into the fixed text grammar consumed by
// ParseReport. Records are emitted exactly in scan order; nothing is sorted
// or deduplicated.
func (r *Report) Render() string {
	var b strings.Builder
	for i, sec := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "=== %s Packs ===\n", sec.Kind.Title())
		if sec.Missing {
			fmt.Fprintf(&b, "  (No %s packs directory found)\n", sec.Kind)
			continue
		}
		for _, p := range sec.Packs {
			switch {
			case sec.Kind == Resource && p.EntityCount > 0:
				fmt.Fprintf(&b, "  - %s (%d entities):\n", p.Name, p.EntityCount)
				for _, id := range p.Identifiers {
					fmt.Fprintf(&b, "      /summon %s\n", id)
				}
			case p.EntityCount > 0:
				fmt.Fprintf(&b, "  - %s (%d entities)\n", p.Name, p.EntityCount)
			default:
				fmt.Fprintf(&b, "  - %s\n", p.Name)
			}
		}
	}
	return b.String()
}
