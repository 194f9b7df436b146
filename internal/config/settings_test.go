package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file should yield defaults, got error: %v", err)
	}
	defaults := DefaultSettings()
	if *settings != *defaults {
		t.Errorf("Load() = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	saved := &Settings{SortMode: "rating", GroupArtists: true, MaxConcurrentLoads: 8}
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
}
