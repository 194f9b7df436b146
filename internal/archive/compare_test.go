package archive

import (
	"testing"

	"github.com/drakovek/dvk-archive/internal/dvk"
)

func TestCompareAlphanum(t *testing.T) {
	tests := []struct {
		name string
		x    string
		y    string
		want int // sign only
	}{
		{"numeric runs by value", "item2", "item10", -1},
		{"case insensitive equal", "Item", "item", 0},
		{"strict prefix orders first", "item2", "item2a", -1},
		{"plain lexical", "apple", "banana", -1},
		{"equal strings", "same", "same", 0},
		{"leading zeros ignored for value", "item02", "item2", 0},
		{"digit run vs letter run", "a1", "ab", -1},
		{"empty vs non-empty", "", "a", -1},
		{"both empty", "", "", 0},
		{"long numbers", "file999999999999999999999", "file1000000000000000000000", -1},
		{"number before trailing text", "v2 final", "v10 draft", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareAlphanum(tt.x, tt.y)
			if sign(got) != tt.want {
				t.Errorf("CompareAlphanum(%q, %q) = %d, want sign %d", tt.x, tt.y, got, tt.want)
			}
			// Ordering must be antisymmetric.
			if rev := CompareAlphanum(tt.y, tt.x); sign(rev) != -tt.want {
				t.Errorf("CompareAlphanum(%q, %q) = %d, want sign %d", tt.y, tt.x, rev, -tt.want)
			}
		})
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input string
		want  SortMode
	}{
		{"t", SortTime},
		{"time", SortTime},
		{"r", SortRating},
		{"RATING", SortRating},
		{"v", SortViews},
		{"views", SortViews},
		{"a", SortAlpha},
		{"alpha", SortAlpha},
		{"", SortAlpha},
		{"nonsense", SortAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSortMode(tt.input); got != tt.want {
				t.Errorf("ParseSortMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComparator_TieChains(t *testing.T) {
	older := &dvk.Dvk{Title: "Same Title", Time: "2019/01/01|10:00"}
	newer := &dvk.Dvk{Title: "Same Title", Time: "2020/06/15|09:30"}

	// Alphabetic ties fall back to publication time.
	alpha := Comparator(SortAlpha, false)
	if alpha(older, newer) >= 0 {
		t.Error("alpha comparator should break title ties on time")
	}

	// Time ties fall back to title.
	early := &dvk.Dvk{Title: "Beta", Time: "2019/01/01|10:00"}
	late := &dvk.Dvk{Title: "Alpha", Time: "2019/01/01|10:00"}
	timed := Comparator(SortTime, false)
	if timed(late, early) >= 0 {
		t.Error("time comparator should break time ties on title")
	}

	// Rating ties fall back to the full alphabetic chain.
	rated := Comparator(SortRating, false)
	a := &dvk.Dvk{Title: "Alpha", Rating: 3}
	b := &dvk.Dvk{Title: "Beta", Rating: 3}
	if rated(a, b) >= 0 {
		t.Error("rating comparator should break rating ties alphabetically")
	}
}

func TestComparator_ArtistGrouping(t *testing.T) {
	zed := &dvk.Dvk{Title: "A", Artists: []string{"Zed"}}
	amy := &dvk.Dvk{Title: "B", Artists: []string{"Amy"}}

	grouped := Comparator(SortAlpha, true)
	if grouped(amy, zed) >= 0 {
		t.Error("grouped comparator should put Amy's record before Zed's despite title order")
	}

	ungrouped := Comparator(SortAlpha, false)
	if ungrouped(zed, amy) >= 0 {
		t.Error("ungrouped comparator should order by title only")
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
