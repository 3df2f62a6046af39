package library

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator builds the collator used for every title and tag comparison.
// Collators carry internal buffers and are not safe for concurrent use, so
// each sorting operation gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// SortByTitle orders books by title ascending using locale-aware,
// case-insensitive collation ("apple" before "Banana" before "Zoo"). This is
// the canonical index order; the builder applies it before writing output.
func SortByTitle(books []Book) {
	c := newCollator()
	sort.SliceStable(books, func(i, j int) bool {
		return c.CompareString(books[i].Title, books[j].Title) < 0
	})
}

// SortFinished returns a copy of books ordered by rating, then title, for
// the finished shelf. Missing ratings sort as 0. When descending is true the
// highest rating comes first and ties break by title descending; toggling
// flips both keys.
func SortFinished(books []Book, descending bool) []Book {
	out := make([]Book, len(books))
	copy(out, books)
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Rating != b.Rating {
			if descending {
				return a.Rating > b.Rating
			}
			return a.Rating < b.Rating
		}
		cmp := c.CompareString(a.Title, b.Title)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// TagCount pairs a tag with the number of books carrying it.
type TagCount struct {
	Name  string
	Count int
}

// Tags returns the distinct tags across the whole index with per-tag counts,
// sorted ascending by name. Tags are compared exactly as written in the
// front matter.
func (x *Index) Tags() []TagCount {
	counts := make(map[string]int)
	for _, b := range x.Books {
		for _, t := range b.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, TagCount{Name: name, Count: n})
	}
	c := newCollator()
	sort.Slice(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// timelineDate picks the date a finished book is ordered by on the timeline:
// the finished date when present, then the started date, then the source
// file's modification timestamp.
func timelineDate(b Book) string {
	if b.FinishedDate != "" {
		return b.FinishedDate
	}
	if b.StartedDate != "" {
		return b.StartedDate
	}
	if b.UpdatedAt != nil {
		return *b.UpdatedAt
	}
	return ""
}

// Timeline returns the reading-journey ordering: books currently being read
// first (in index order), followed by finished books most recent first.
// Dates compare as raw strings, which is sufficient for ISO-formatted
// values. Wishlist books do not appear.
func (x *Index) Timeline() []Book {
	out := x.ByStatus(StatusReading)
	finished := x.ByStatus(StatusFinished)
	sort.SliceStable(finished, func(i, j int) bool {
		return timelineDate(finished[i]) > timelineDate(finished[j])
	})
	return append(out, finished...)
}

// Related returns up to limit other books sharing at least one tag with
// current, in index order.
func (x *Index) Related(current Book, limit int) []Book {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	var out []Book
	for _, b := range x.Books {
		if b.Slug == current.Slug {
			continue
		}
		for _, t := range b.Tags {
			if _, ok := tagSet[t]; ok {
				out = append(out, b)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}
