package stringsx

import "strings"

// HasPathPrefix checks if the import path p equals prefix or lies under it.
// Unlike strings.HasPrefix it only matches on path element boundaries, so
// "example.com/ab" is not under "example.com/a".
func HasPathPrefix(p, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return false
	}
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	return len(p) == len(prefix) || p[len(prefix)] == '/'
}
