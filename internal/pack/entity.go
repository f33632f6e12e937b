package pack

import (
	"encoding/json"
	"fmt"
	"strings"
)

// entitySchemas are the top-level keys an entity definition file may use,
// tried in order. Server-side definitions use "minecraft:entity", client-side
// ones "minecraft:client_entity"; both nest the identifier at
// description.identifier.
var entitySchemas = []string{"minecraft:entity", "minecraft:client_entity"}

// ProbeIdentifier extracts the declared entity identifier from the raw text
// of a definition file. It returns "" when the file declares no usable
// identifier, including when the resolved value is the literal "null" or
// empty after trimming. A non-nil error means the file is not valid JSON at
// all; callers treat that the same as "no identifier" but will want to log
// the filename.
func ProbeIdentifier(raw []byte) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("parsing definition: %w", err)
	}

	for _, key := range entitySchemas {
		body, ok := doc[key]
		if !ok {
			continue
		}

		var def struct {
			Description struct {
				Identifier any `json:"identifier"`
			} `json:"description"`
		}
		if err := json.Unmarshal(body, &def); err != nil {
			// Variant present but not shaped as expected; try the next one.
			continue
		}

		id, ok := def.Description.Identifier.(string)
		if !ok {
			// Absent or JSON null: fall through to the next variant.
			continue
		}
		id = strings.TrimSpace(id)
		if id == "" || id == "null" {
			// Resolved but unusable; this does not fall through.
			return "", nil
		}
		return id, nil
	}
	return "", nil
}
