package utils

import (
	"path/filepath"
	"strings"
)

// ToOSPath converts a backslash-separated archive path to a native
// filesystem path rooted at dir. Stray NUL padding from directory entries is
// stripped from each component.
func ToOSPath(dir, archivePath string) string {
	parts := strings.Split(archivePath, "\\")
	cleaned := make([]string, 0, len(parts)+1)
	cleaned = append(cleaned, dir)
	for _, part := range parts {
		if part = strings.Trim(part, "\x00"); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return filepath.Join(cleaned...)
}

// ToArchivePath converts a native filesystem path, relative to the
// extraction root, to the backslash-separated form the game's directory
// index uses.
func ToArchivePath(rel string) string {
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "\\")
}
