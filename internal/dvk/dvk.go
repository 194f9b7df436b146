package dvk

import "strings"

// EmptyTime is the placeholder publication time for records that don't
// carry one. It sorts before every real timestamp.
const EmptyTime = "0000/00/00|00:00"

// Dvk represents a single archived media item: the metadata held in one
// .dvk sidecar file plus a reference to the file it was read from.
//
// A Dvk is immutable once loaded. The ID identifies the item on its source
// site and is expected to be unique across an archive, but duplicates can
// occur in practice; detecting them is the job of archive.SameIDs.
//
// Time uses the fixed format "YYYY/MM/DD|HH:MM". Because the format is
// zero-padded and fixed-width, publication times compare correctly as
// plain strings.
type Dvk struct {
	// ID is the item's identifier on its source site.
	ID string

	// Title is the item's display title.
	Title string

	// Artists lists the item's creators in display order.
	Artists []string

	// Time is the publication time in "YYYY/MM/DD|HH:MM" format.
	// EmptyTime when unknown.
	Time string

	// WebTags are the tags attached to the item on its source site.
	WebTags []string

	// Description is the item's description, if any.
	Description string

	// Rating is the user-assigned rating.
	Rating int

	// Views is the view count recorded when the item was archived.
	Views int

	// PageURL is the page the item was archived from.
	PageURL string

	// DirectURL is the direct URL of the item's media.
	DirectURL string

	// SecondaryURL is the direct URL of the item's secondary media, if any.
	SecondaryURL string

	// MediaFile is the name of the media file the record describes,
	// relative to the record's directory.
	MediaFile string

	// SecondaryFile is the name of the secondary media file, if any.
	SecondaryFile string

	// Path is the absolute path of the .dvk file this record was read from.
	// Unique across a loaded archive.
	Path string
}

// New returns an empty record. Index lookups that miss return one of
// these rather than failing, so callers check IsEmpty instead of handling
// an error or a nil.
func New() *Dvk {
	return &Dvk{Time: EmptyTime}
}

// IsEmpty reports whether the record is the empty sentinel returned for
// out-of-range index lookups.
func (d *Dvk) IsEmpty() bool {
	return d == nil || (d.ID == "" && d.Title == "" && d.Path == "")
}

// ArtistString joins the record's artists into a single display string.
// Sorting compares artists in this joined form.
func (d *Dvk) ArtistString() string {
	return strings.Join(d.Artists, ", ")
}
