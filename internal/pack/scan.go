package pack

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ScanEntities returns the entity identifiers declared by a resource pack,
// in directory listing order. A missing entity/ subdirectory is the common
// case (most resource packs define no entities) and yields an empty list.
// Files that cannot be read or parsed are logged and skipped; one bad
// definition never aborts its siblings. The result is neither sorted nor
// deduplicated: it is a log of what was found.
func ScanEntities(packDir string) []string {
	entityDir := filepath.Join(packDir, "entity")
	entries, err := os.ReadDir(entityDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("cannot scan entity directory", "dir", entityDir, "err", err)
		}
		return nil
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(entityDir, e.Name()))
		if err != nil {
			slog.Warn("cannot read entity file", "file", e.Name(), "err", err)
			continue
		}
		id, err := ProbeIdentifier(raw)
		if err != nil {
			slog.Warn("cannot parse entity file", "file", e.Name(), "err", err)
			continue
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// countJSONFiles counts the .json files directly under dir, 0 when dir is
// absent.
func countJSONFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n
}

// ScanInventory walks the behavior and resource pack roots under dataDir and
// collects the custom packs currently installed. The scan reads the live
// filesystem on every call; a concurrent install may be observed
// half-extracted, which is accepted rather than locked against. The context
// deadline bounds the whole walk; exceeding it fails this scan, not the
// process.
func ScanInventory(ctx context.Context, dataDir string) (*Report, error) {
	rep := &Report{}
	for _, kind := range []Kind{Behavior, Resource} {
		sec := Section{Kind: kind}
		root := filepath.Join(dataDir, kind.Dir())
		entries, err := os.ReadDir(root)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("cannot list pack root", "dir", root, "err", err)
			}
			sec.Missing = true
			rep.Sections = append(rep.Sections, sec)
			continue
		}

		for _, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("inventory scan aborted: %w", err)
			}
			if !e.IsDir() || IsSystemPack(kind, e.Name()) {
				continue
			}
			inst := Installed{Name: e.Name()}
			packDir := filepath.Join(root, e.Name())
			switch kind {
			case Behavior:
				inst.EntityCount = countJSONFiles(filepath.Join(packDir, "entities"))
			case Resource:
				inst.Identifiers = ScanEntities(packDir)
				inst.EntityCount = len(inst.Identifiers)
			}
			sec.Packs = append(sec.Packs, inst)
		}
		rep.Sections = append(rep.Sections, sec)
	}
	return rep, nil
}
