package project

import "path/filepath"

// walkAncestors calls accept for start and then each successive parent
// directory, stopping at the filesystem root. It returns the first directory
// accept reported true for, or "" when the walk exhausted without a match.
//
// The walk is pure path manipulation: start does not have to exist on disk.
func walkAncestors(start string, accept func(dir string) bool) string {
	dir := start
	for {
		if accept(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}
