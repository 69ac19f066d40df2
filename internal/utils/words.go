package utils

import (
	"path"
	"strings"
)

func CountWords(s string) int {
	return len(strings.Fields(s))
}

// NormalizeUsername returns the lookup form of a username.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FileExt returns the extension of name without the dot, or "" when there is none.
func FileExt(name string) string {
	ext := path.Ext(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimPrefix(ext, ".")
}
