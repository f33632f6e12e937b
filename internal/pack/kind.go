package pack

import "strings"

// Kind distinguishes the two top-level pack directories managed by the game
// server.
type Kind int

const (
	Behavior Kind = iota
	Resource
)

// Dir returns the root subdirectory name for this kind.
func (k Kind) Dir() string {
	if k == Behavior {
		return "behavior_packs"
	}
	return "resource_packs"
}

func (k Kind) String() string {
	if k == Behavior {
		return "behavior"
	}
	return "resource"
}

// Title returns the capitalized kind name used in report section headers.
func (k Kind) Title() string {
	if k == Behavior {
		return "Behavior"
	}
	return "Resource"
}

// systemPrefixes marks directory basenames that ship with the server rather
// than being installed by a user. The lists differ per kind ("experimental"
// only for behavior, "editor" only for resource); the asymmetry comes from
// the server's own layout and is kept as-is.
var systemPrefixes = map[Kind][]string{
	Behavior: {"vanilla", "chemistry", "experimental"},
	Resource: {"vanilla", "chemistry", "editor"},
}

// IsSystemPack reports whether the directory basename names a built-in pack
// for the given kind. Only the basename is consulted, never the contents.
func IsSystemPack(k Kind, name string) bool {
	for _, p := range systemPrefixes[k] {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
