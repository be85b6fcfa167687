package domain

import "slices"

// FileSet is an immutable snapshot of relative file paths.
type FileSet struct {
	paths map[string]struct{}
}

// NewFileSet creates a FileSet from the given paths.
func NewFileSet(paths []string) FileSet {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return FileSet{paths: set}
}

// Contains reports whether path is part of the snapshot.
func (s FileSet) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Added returns the paths in current that are not in s, sorted.
func (s FileSet) Added(current []string) []string {
	var added []string
	for _, p := range current {
		if !s.Contains(p) {
			added = append(added, p)
		}
	}
	slices.Sort(added)
	return slices.Compact(added)
}
