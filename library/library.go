// Package library defines the book record model shared by the index builder
// and the web application, along with every derived view over the loaded
// index: status partitions, favorites, tag catalogue, search, finished-shelf
// sorting, the reading timeline, and related-book lookup.
//
// The index is loaded once and treated as immutable; every operation here is
// a pure function over the record slice.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Status is the reading state of a book. The set is closed: every record in
// a generated index carries one of the three values below.
type Status string

const (
	StatusReading  Status = "reading"
	StatusFinished Status = "finished"
	StatusWishlist Status = "wishlist"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusReading, StatusFinished, StatusWishlist:
		return true
	}
	return false
}

// Book is one validated record derived from a markdown source file.
//
// The JSON shape is the contract between the builder and the viewer:
// optional scalars disappear when absent, favorite survives when explicitly
// false, tags is always an array, and updatedAt is always present (null when
// the source file's mtime could not be read).
type Book struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Status       Status   `json:"status"`
	Tags         []string `json:"tags"`
	Rating       int      `json:"rating,omitempty"`
	Favorite     *bool    `json:"favorite,omitempty"`
	StartedDate  string   `json:"startedDate,omitempty"`
	FinishedDate string   `json:"finishedDate,omitempty"`
	ISBN         string   `json:"isbn,omitempty"`
	CoverImage   string   `json:"coverImage,omitempty"`
	AmazonURL    string   `json:"amazonUrl,omitempty"`
	BolURL       string   `json:"bolUrl,omitempty"`
	Published    string   `json:"published,omitempty"`
	Pages        int      `json:"pages,omitempty"`
	Review       string   `json:"review"`
	HasReview    bool     `json:"hasReview"`
	UpdatedAt    *string  `json:"updatedAt"`
}

// IsFavorite reports whether the book was explicitly marked as a favorite.
func (b Book) IsFavorite() bool {
	return b.Favorite != nil && *b.Favorite
}

// Link returns the detail-page path for the book.
func (b Book) Link() string {
	return "/books/" + b.Slug + "/"
}

// Index is the generated artifact: all validated books sorted by title, plus
// the build timestamp. It is overwritten wholesale on every build and read
// once per server session.
type Index struct {
	GeneratedAt string `json:"generatedAt"`
	Books       []Book `json:"books"`
}

// Load reads and decodes a generated index file.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding index %s: %w", path, err)
	}
	if idx.Books == nil {
		idx.Books = []Book{}
	}
	return &idx, nil
}

// Counts summarizes the library for the overview header and sidebar badges.
type Counts struct {
	Total     int
	Reading   int
	Finished  int
	Wishlist  int
	Favorites int
}

// Counts tallies the record set once per call.
func (x *Index) Counts() Counts {
	c := Counts{Total: len(x.Books)}
	for _, b := range x.Books {
		switch b.Status {
		case StatusReading:
			c.Reading++
		case StatusFinished:
			c.Finished++
		case StatusWishlist:
			c.Wishlist++
		}
		if b.IsFavorite() {
			c.Favorites++
		}
	}
	return c
}

// ByStatus returns all books with the given status, preserving index order.
func (x *Index) ByStatus(s Status) []Book {
	var out []Book
	for _, b := range x.Books {
		if b.Status == s {
			out = append(out, b)
		}
	}
	return out
}

// Favorites returns all books explicitly marked favorite, in index order.
func (x *Index) Favorites() []Book {
	var out []Book
	for _, b := range x.Books {
		if b.IsFavorite() {
			out = append(out, b)
		}
	}
	return out
}

// BySlug looks up a single book by its slug.
func (x *Index) BySlug(slug string) (Book, bool) {
	for _, b := range x.Books {
		if b.Slug == slug {
			return b, true
		}
	}
	return Book{}, false
}

// NormalizeQuery prepares a raw search string for matching.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Search filters books down to those whose title, author, review, or tags
// contain the query as a substring, case-insensitively. An empty (or
// whitespace-only) query matches everything. Callers pre-filter by view, so
// Search operates on a candidate slice rather than the whole index.
func Search(books []Book, query string) []Book {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		haystack := strings.ToLower(
			b.Title + " " + b.Author + " " + b.Review + " " + strings.Join(b.Tags, " "),
		)
		if strings.Contains(haystack, normalized) {
			out = append(out, b)
		}
	}
	return out
}

// FilterByTag keeps books carrying the exact tag. An empty tag keeps all.
func FilterByTag(books []Book, tag string) []Book {
	if tag == "" {
		return books
	}
	var out []Book
	for _, b := range books {
		for _, t := range b.Tags {
			if t == tag {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
