package domain

import "path/filepath"

// ResolvePath joins segments onto base from left to right.
// An absolute segment replaces everything before it. The result is cleaned.
func ResolvePath(base string, segments ...string) string {
	resolved := base
	for _, seg := range segments {
		if filepath.IsAbs(seg) {
			resolved = seg
			continue
		}
		resolved = filepath.Join(resolved, seg)
	}
	return filepath.Clean(resolved)
}
