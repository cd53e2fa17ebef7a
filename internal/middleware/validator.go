package middleware

import (
	"path/filepath"
	"strings"
)

const maxFilenameLen = 255

// SanitizeFilename strips path components and control characters from a client-supplied
// file name so it can be logged safely. It returns "document" when nothing usable is left.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.ReplaceAll(name, "\x00", ""))

	var b strings.Builder
	for _, r := range name {
		if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}
	name = strings.TrimSpace(b.String())
	if name == "" || name == "." || name == "/" || name == ".." {
		return "document"
	}
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	return name
}
