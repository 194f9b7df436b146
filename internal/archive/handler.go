package archive

import (
	"context"
	"fmt"
	"slices"

	"github.com/drakovek/dvk-archive/internal/dvk"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelError
)

// ProgressEvent is a load progress update delivered to the handler's
// progress callback.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Handler owns the records loaded from an archive tree together with a
// sort-order index over them.
//
// The index (order) is a permutation of record positions: records stay in
// load order, and Sort reorders the permutation only. Load resets the
// permutation to identity, so immediately after a load the sorted view and
// the direct view agree.
//
// A Handler is single-writer: it is not safe for concurrent mutation, and
// callers interleaving Load and Sort from multiple goroutines must
// serialize access themselves.
type Handler struct {
	records []*dvk.Dvk
	order   []int

	maxLoads   int
	onProgress func(ProgressEvent)
}

// NewHandler creates a Handler.
//
// maxLoads bounds how many leaf directories are read concurrently during
// Load; values below 1 are treated as 1. onProgress may be nil. The
// callback can be invoked from multiple goroutines while a Load is in
// flight.
func NewHandler(maxLoads int, onProgress func(ProgressEvent)) *Handler {
	if maxLoads < 1 {
		maxLoads = 1
	}
	return &Handler{
		maxLoads:   maxLoads,
		onProgress: onProgress,
	}
}

func (h *Handler) progress(e ProgressEvent) {
	if h.onProgress != nil {
		h.onProgress(e)
	}
}

// Load replaces the handler's contents with every record found under the
// given roots.
//
// The roots are scanned for leaf directories (directories directly
// containing .dvk files), each leaf directory is read non-recursively, and
// the results are appended in the scanner's sorted directory order. Leaf
// directories are read concurrently, but results are merged back in
// scanner order rather than arrival order, so load order stays
// deterministic. After loading, the sort index is the identity
// permutation.
//
// Missing roots, unreadable directories, and malformed record files all
// contribute nothing; the only error Load returns is context cancellation.
func (h *Handler) Load(ctx context.Context, roots []string) error {
	h.records = nil
	h.order = nil

	dirs := ScanDirectories(roots)
	h.progress(ProgressEvent{
		Message: fmt.Sprintf("Loading DVK files from %d directories", len(dirs)),
		Level:   LevelInfo,
	})

	batches := make([][]*dvk.Dvk, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.maxLoads)
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			batches[i] = dvk.ReadDvkDirectory(dir)
			h.progress(ProgressEvent{
				Message: fmt.Sprintf("Read %d records from %s", len(batches[i]), dir),
				Level:   LevelVerbose,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.resetOrder()
		return err
	}

	for _, batch := range batches {
		h.records = append(h.records, batch...)
	}
	h.resetOrder()

	h.progress(ProgressEvent{
		Message: fmt.Sprintf("Loaded %d DVK files", len(h.records)),
		Level:   LevelInfo,
	})
	return nil
}

// resetOrder rebuilds the sort index as the identity permutation.
func (h *Handler) resetOrder() {
	h.order = make([]int, len(h.records))
	for i := range h.order {
		h.order[i] = i
	}
}

// Size returns the number of loaded records.
func (h *Handler) Size() int {
	return len(h.order)
}

// SortedDvk returns the record at position i in sorted order.
//
// An out-of-range index returns an empty record rather than panicking;
// callers check the result with IsEmpty.
func (h *Handler) SortedDvk(i int) *dvk.Dvk {
	if i > -1 && i < h.Size() {
		return h.records[h.order[i]]
	}
	return dvk.New()
}

// DirectDvk returns the record at position i in load order, with the same
// empty-record contract as SortedDvk.
func (h *Handler) DirectDvk(i int) *dvk.Dvk {
	if i > -1 && i < h.Size() {
		return h.records[i]
	}
	return dvk.New()
}

// Sort reorders the sort index by the given mode, optionally grouping
// records of the same artist together. Records themselves stay in load
// order; only the index permutation moves. Sorting is stable, and since
// every comparator bottoms out in title plus publication time, repeated
// sorts with the same parameters produce identical orderings.
func (h *Handler) Sort(mode SortMode, groupArtists bool) {
	compare := Comparator(mode, groupArtists)
	slices.SortStableFunc(h.order, func(a, b int) int {
		return compare(h.records[a], h.records[b])
	})
}
