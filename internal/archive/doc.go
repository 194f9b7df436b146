// Package archive implements the load-index-sort engine for DVK archives:
// recursive discovery of record directories, an in-memory record index
// with pluggable sort orders, and duplicate-identifier detection.
//
// # Loading
//
// A Handler loads every record under one or more root directories:
//
//	handler := archive.NewHandler(4, func(e archive.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	if err := handler.Load(ctx, []string{"/archive"}); err != nil {
//	    return err
//	}
//	fmt.Printf("%d records\n", handler.Size())
//
// Leaf directories are discovered by ScanDirectories and read
// concurrently, bounded by the handler's load limit. Results merge back
// in directory order, so the same tree always loads in the same order.
//
// # Sorting
//
// Sort reorders the handler's index permutation without touching load
// order:
//
//	handler.Sort(archive.SortRating, true)
//	for i := 0; i < handler.Size(); i++ {
//	    d := handler.SortedDvk(i)
//	    fmt.Println(d.Title)
//	}
//
// Titles and artists compare in natural alphanumeric order, so "item2"
// sorts before "item10". Every mode's tie chain ends in title plus
// publication time, making sorts reproducible.
//
// # Duplicate IDs
//
// SameIDs finds records sharing an identifier:
//
//	for _, path := range archive.SameIDs(handler) {
//	    fmt.Println(path)
//	}
//
// # Error Handling
//
// The engine degrades rather than fails: missing roots, unreadable
// directories, and out-of-range index lookups all produce empty results
// (an empty directory list, an empty record). The only error surfaced by
// Load is context cancellation.
package archive
