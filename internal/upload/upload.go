package upload

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// allowedExtensions lists the archive suffixes the panel accepts.
var allowedExtensions = []string{".mcaddon"}

// Allowed reports whether the filename carries an accepted archive
// extension. The check is case-insensitive.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename reduces an uploaded filename to a safe basename: any path
// components are dropped, spaces become underscores, every remaining byte
// outside [A-Za-z0-9._-] is removed, and leading/trailing dots and
// underscores are stripped. An empty result means the name is unusable and
// the upload must be rejected.
func SanitizeFilename(name string) string {
	// Strip both separator styles before Base so a Windows-style path does
	// not survive on a unix host.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// Save stages the upload stream in dir under the given (already sanitized)
// filename and returns the staged path together with the archive's SHA256,
// which the caller logs for the audit trail.
func Save(dir, filename string, r io.Reader) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("creating upload dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	out, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("staging %s: %w", path, err)
	}
	defer out.Close()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(out, h), r); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, hex.EncodeToString(h.Sum(nil)), nil
}
