package archive

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/drakovek/dvk-archive/internal/dvk"
)

// ScanDirectories walks each root and returns every directory that
// directly contains at least one .dvk file, the root itself included.
//
// Blank root entries are skipped, and a missing or unreadable root simply
// contributes nothing — a bad root is an empty contribution, not an error.
// The result is deduplicated by absolute path and sorted in ascending
// lexical order, so load order is deterministic across runs.
func ScanDirectories(roots []string) []string {
	found := make(map[string]struct{})
	for _, root := range roots {
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
			// Unreadable entries are treated as "no record files here".
			if err != nil || entry.IsDir() {
				return nil
			}
			if strings.HasSuffix(strings.ToLower(entry.Name()), dvk.Extension) {
				found[filepath.Dir(path)] = struct{}{}
			}
			return nil
		})
	}

	dirs := make([]string, 0, len(found))
	for dir := range found {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	return dirs
}
