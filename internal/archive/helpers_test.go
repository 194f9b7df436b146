package archive

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// dvkFixture describes a test record written to disk as a .dvk file.
type dvkFixture struct {
	id      string
	title   string
	artists []string
	time    string
	rating  int
	views   int
}

// writeDvk writes a fixture record as a .dvk file and returns its path.
func writeDvk(t *testing.T, dir, name string, f dvkFixture) string {
	t.Helper()

	payload := map[string]any{
		"file_type": "dvk",
		"id":        f.id,
		"info": map[string]any{
			"title":   f.title,
			"artists": f.artists,
			"time":    f.time,
			"rating":  f.rating,
			"views":   f.views,
		},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling fixture %s: %v", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// sortedTitles returns the titles of all records in sorted order.
func sortedTitles(h *Handler) []string {
	titles := make([]string, 0, h.Size())
	for i := 0; i < h.Size(); i++ {
		titles = append(titles, h.SortedDvk(i).Title)
	}
	return titles
}
