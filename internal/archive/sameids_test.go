package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestSameIDs mirrors the archive layout the duplicate finder was built
// around: four records across two directories, three of which share an id.
func TestSameIDs(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	sub2 := filepath.Join(root, "sub2")
	for _, dir := range []string{sub, sub2} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	// Clutter that must not affect detection.
	if err := os.WriteFile(filepath.Join(root, "file0"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub2, "noDVK.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	writeDvk(t, root, "dvk1.dvk", dvkFixture{id: "id1", title: "title1", artists: []string{"artist"}})
	writeDvk(t, sub, "dvk2.dvk", dvkFixture{id: "id2", title: "title2", artists: []string{"artist"}})
	writeDvk(t, sub, "dvk3.dvk", dvkFixture{id: "id1", title: "title3", artists: []string{"artist"}})
	writeDvk(t, root, "dvk4.dvk", dvkFixture{id: "id1", title: "title4", artists: []string{"artist"}})

	h := NewHandler(4, nil)
	if err := h.Load(context.Background(), []string{root}); err != nil {
		t.Fatal(err)
	}

	paths := SameIDs(h)
	if len(paths) != 3 {
		t.Fatalf("SameIDs returned %d paths, want 3: %v", len(paths), paths)
	}

	want := []string{"dvk1.dvk", "dvk3.dvk", "dvk4.dvk"}
	for i, path := range paths {
		if filepath.Base(path) != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, filepath.Base(path), want[i])
		}
	}
}

func TestSameIDs_NoCollisions(t *testing.T) {
	root := t.TempDir()
	writeDvk(t, root, "a.dvk", dvkFixture{id: "id1", title: "a"})
	writeDvk(t, root, "b.dvk", dvkFixture{id: "id2", title: "b"})
	writeDvk(t, root, "c.dvk", dvkFixture{id: "id3", title: "c"})

	h := NewHandler(1, nil)
	if err := h.Load(context.Background(), []string{root}); err != nil {
		t.Fatal(err)
	}

	if paths := SameIDs(h); len(paths) != 0 {
		t.Errorf("SameIDs on a collision-free archive = %v, want empty", paths)
	}
}

func TestSameIDs_EmptyHandler(t *testing.T) {
	h := NewHandler(1, nil)
	if paths := SameIDs(h); len(paths) != 0 {
		t.Errorf("SameIDs on an empty handler = %v, want empty", paths)
	}
}

// Clusters are emitted in ascending order of their first member's sorted
// position, members in ascending sorted position within each cluster.
func TestSameIDs_ClusterOrder(t *testing.T) {
	root := t.TempDir()
	writeDvk(t, root, "a.dvk", dvkFixture{id: "x", title: "a"})
	writeDvk(t, root, "b.dvk", dvkFixture{id: "y", title: "b"})
	writeDvk(t, root, "c.dvk", dvkFixture{id: "x", title: "c"})
	writeDvk(t, root, "d.dvk", dvkFixture{id: "y", title: "d"})

	h := NewHandler(1, nil)
	if err := h.Load(context.Background(), []string{root}); err != nil {
		t.Fatal(err)
	}

	paths := SameIDs(h)
	want := []string{"a.dvk", "c.dvk", "b.dvk", "d.dvk"}
	if len(paths) != len(want) {
		t.Fatalf("SameIDs returned %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, path := range paths {
		if filepath.Base(path) != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, filepath.Base(path), want[i])
		}
	}
}
