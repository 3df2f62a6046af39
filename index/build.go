// Package index implements the build step of the library: it reads a
// directory of markdown book files, validates each file's front matter
// against a strict schema, normalizes the survivors into book records, and
// emits one sorted JSON index.
//
// Failure handling is two-tier. A file that fails schema validation is
// skipped with a diagnostic and the build continues; a file whose front
// matter does not parse at all aborts the whole build. The asymmetry is
// deliberate: broken metadata in one book should not hide the rest of the
// shelf, but a syntactically mangled file usually means an editing accident
// worth stopping for.
package index

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eringen/bookshelf/library"
)

// timestampLayout matches the millisecond-precision UTC form used for
// generatedAt and updatedAt.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Build turns the markdown files under booksDir into a sorted index. The
// directory is created if missing, and seeded with starter content when it
// holds no markdown at all.
func Build(booksDir string) (*library.Index, error) {
	if err := os.MkdirAll(booksDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating books directory: %w", err)
	}
	if err := Seed(booksDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(booksDir)
	if err != nil {
		return nil, fmt.Errorf("reading books directory: %w", err)
	}

	books := []library.Book{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		book, ok, err := buildOne(filepath.Join(booksDir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			books = append(books, book)
		}
	}

	library.SortByTitle(books)
	return &library.Index{
		GeneratedAt: time.Now().UTC().Format(timestampLayout),
		Books:       books,
	}, nil
}

// buildOne processes a single markdown file. ok is false when the file
// failed validation and was skipped; a non-nil error aborts the build.
func buildOne(path, name string) (library.Book, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return library.Book{}, false, fmt.Errorf("reading %s: %w", name, err)
	}

	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return library.Book{}, false, fmt.Errorf("%s: %w", name, err)
	}

	parsed, errs := validate(fm)
	if len(errs) > 0 {
		log.Printf("index: skipping %s: %s", name, joinFieldErrors(errs))
		return library.Book{}, false, nil
	}

	slug := strings.TrimSuffix(name, ".md")
	review := strings.TrimSpace(body)

	return library.Book{
		ID:           slug,
		Slug:         slug,
		Title:        parsed.Title,
		Author:       parsed.Author,
		Status:       parsed.Status,
		Tags:         parsed.Tags,
		Rating:       parsed.Rating,
		Favorite:     parsed.Favorite,
		StartedDate:  parsed.StartedDate,
		FinishedDate: parsed.FinishedDate,
		ISBN:         parsed.ISBN,
		CoverImage:   parsed.CoverImage,
		AmazonURL:    parsed.AmazonURL,
		BolURL:       parsed.BolURL,
		Published:    parsed.Published,
		Pages:        parsed.Pages,
		Review:       review,
		HasReview:    review != "",
		UpdatedAt:    fileMTime(path),
	}, true, nil
}

// fileMTime returns the file's modification timestamp, or nil when the stat
// fails. A failed stat is logged but never drops the record.
func fileMTime(path string) *string {
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("index: unable to read modified time for %s: %v", path, err)
		return nil
	}
	ts := info.ModTime().UTC().Format(timestampLayout)
	return &ts
}

// WriteIndex overwrites the index artifact at path, creating parent
// directories as needed. Output is indented JSON with a trailing newline so
// the artifact diffs cleanly under version control.
func WriteIndex(idx *library.Index, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
