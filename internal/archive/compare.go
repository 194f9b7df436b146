package archive

import (
	"cmp"
	"strings"

	"github.com/drakovek/dvk-archive/internal/dvk"
)

// SortMode selects the primary ordering used when sorting an archive.
type SortMode int

const (
	// SortAlpha orders records by title, then publication time.
	SortAlpha SortMode = iota

	// SortTime orders records by publication time, then title.
	SortTime

	// SortRating orders records by rating, then alphabetically.
	SortRating

	// SortViews orders records by view count, then alphabetically.
	SortViews
)

// ParseSortMode maps a mode string to a SortMode. Both the single-letter
// forms used by the original archive tools ("a", "t", "r", "v") and full
// names are accepted. Anything else sorts alphabetically.
func ParseSortMode(s string) SortMode {
	switch strings.ToLower(s) {
	case "t", "time":
		return SortTime
	case "r", "rating":
		return SortRating
	case "v", "views":
		return SortViews
	default:
		return SortAlpha
	}
}

// String returns the full name of the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortTime:
		return "time"
	case SortRating:
		return "rating"
	case SortViews:
		return "views"
	default:
		return "alpha"
	}
}

// CompareFunc compares two records, returning a negative number if x
// orders first, a positive number if y orders first, and zero if equal.
type CompareFunc func(x, y *dvk.Dvk) int

// Comparator builds the comparison function for a sort mode.
//
// When groupArtists is set, every mode first compares the records' joined
// artist strings alphanumerically, so an artist's records cluster together
// regardless of the primary key. Each mode's tie chain bottoms out in
// title plus publication time, which makes the ordering total for any two
// records that are not true duplicates.
func Comparator(mode SortMode, groupArtists bool) CompareFunc {
	alpha := alphaComparator(groupArtists)
	switch mode {
	case SortTime:
		return func(x, y *dvk.Dvk) int {
			if groupArtists {
				if c := compareArtists(x, y); c != 0 {
					return c
				}
			}
			if c := strings.Compare(x.Time, y.Time); c != 0 {
				return c
			}
			return CompareAlphanum(x.Title, y.Title)
		}
	case SortRating:
		return func(x, y *dvk.Dvk) int {
			if groupArtists {
				if c := compareArtists(x, y); c != 0 {
					return c
				}
			}
			if c := cmp.Compare(x.Rating, y.Rating); c != 0 {
				return c
			}
			return alpha(x, y)
		}
	case SortViews:
		return func(x, y *dvk.Dvk) int {
			if groupArtists {
				if c := compareArtists(x, y); c != 0 {
					return c
				}
			}
			if c := cmp.Compare(x.Views, y.Views); c != 0 {
				return c
			}
			return alpha(x, y)
		}
	default:
		return alpha
	}
}

func alphaComparator(groupArtists bool) CompareFunc {
	return func(x, y *dvk.Dvk) int {
		if groupArtists {
			if c := compareArtists(x, y); c != 0 {
				return c
			}
		}
		if c := CompareAlphanum(x.Title, y.Title); c != 0 {
			return c
		}
		return strings.Compare(x.Time, y.Time)
	}
}

func compareArtists(x, y *dvk.Dvk) int {
	return CompareAlphanum(x.ArtistString(), y.ArtistString())
}

// CompareAlphanum compares two strings in natural alphanumeric order.
//
// Each string is split into alternating runs of digits and non-digits.
// Runs are compared pairwise: digit runs by numeric value (leading zeros
// don't affect the value but do mark run boundaries), other runs
// case-insensitively. A string that is a run-wise strict prefix of the
// other orders first. So "item2" sorts before "item10", and "Item"
// compares equal to "item".
func CompareAlphanum(x, y string) int {
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		xRun, xNum := nextRun(x, i)
		yRun, yNum := nextRun(y, j)

		var c int
		if xNum && yNum {
			c = compareNumericRuns(xRun, yRun)
		} else {
			c = strings.Compare(strings.ToLower(xRun), strings.ToLower(yRun))
		}
		if c != 0 {
			return c
		}

		i += len(xRun)
		j += len(yRun)
	}
	switch {
	case i < len(x):
		return 1
	case j < len(y):
		return -1
	}
	return 0
}

// nextRun returns the run of digits or non-digits starting at the given
// offset, and whether it is a digit run.
func nextRun(s string, start int) (string, bool) {
	num := isDigit(s[start])
	end := start + 1
	for end < len(s) && isDigit(s[end]) == num {
		end++
	}
	return s[start:end], num
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// compareNumericRuns compares two digit runs by numeric value without
// converting them, so arbitrarily long runs can't overflow. After
// stripping leading zeros, a longer run is a larger number; equal-length
// runs compare lexically.
func compareNumericRuns(x, y string) int {
	tx := strings.TrimLeft(x, "0")
	ty := strings.TrimLeft(y, "0")
	if len(tx) != len(ty) {
		return cmp.Compare(len(tx), len(ty))
	}
	return strings.Compare(tx, ty)
}
