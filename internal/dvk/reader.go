package dvk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the file extension of DVK sidecar files, including the dot.
const Extension = ".dvk"

// dvkFile mirrors the on-disk JSON layout of a .dvk sidecar file.
type dvkFile struct {
	FileType string   `json:"file_type"`
	ID       string   `json:"id"`
	Info     dvkInfo  `json:"info"`
	Web      dvkWeb   `json:"web"`
	File     dvkMedia `json:"file"`
}

type dvkInfo struct {
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	Time        string   `json:"time"`
	WebTags     []string `json:"web_tags"`
	Description string   `json:"description"`
	Rating      int      `json:"rating"`
	Views       int      `json:"views"`
}

type dvkWeb struct {
	PageURL      string `json:"page_url"`
	DirectURL    string `json:"direct_url"`
	SecondaryURL string `json:"secondary_url"`
}

type dvkMedia struct {
	MediaFile     string `json:"media_file"`
	SecondaryFile string `json:"secondary_file"`
}

// ReadDvk reads a single .dvk sidecar file into a record.
//
// The record's Path is set to the absolute path of the file. No field
// validation is performed beyond checking the file_type marker; the
// record is returned exactly as stored.
func ReadDvk(path string) (*Dvk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f dvkFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if f.FileType != "dvk" {
		return nil, fmt.Errorf("%s is not a DVK file", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	d := &Dvk{
		ID:            f.ID,
		Title:         f.Info.Title,
		Artists:       f.Info.Artists,
		Time:          f.Info.Time,
		WebTags:       f.Info.WebTags,
		Description:   f.Info.Description,
		Rating:        f.Info.Rating,
		Views:         f.Info.Views,
		PageURL:       f.Web.PageURL,
		DirectURL:     f.Web.DirectURL,
		SecondaryURL:  f.Web.SecondaryURL,
		MediaFile:     f.File.MediaFile,
		SecondaryFile: f.File.SecondaryFile,
		Path:          abs,
	}
	if d.Time == "" {
		d.Time = EmptyTime
	}
	return d, nil
}

// ReadDvkDirectory reads every .dvk file directly inside a directory.
//
// The read is non-recursive; walking subdirectories is the scanner's job.
// Records are returned in filename order. An unreadable directory or a
// malformed record file contributes nothing — the function never fails
// for "no records here".
func ReadDvkDirectory(dir string) []*Dvk {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var dvks []*Dvk
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), Extension) {
			continue
		}
		d, err := ReadDvk(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		dvks = append(dvks, d)
	}
	return dvks
}
