package views

import (
	"strings"
	"testing"

	"github.com/eringen/bookshelf/library"
)

func TestFormatTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"cozy-fantasy", "cozy fantasy"},
		{"science-fiction", "science fiction"},
		{"fantasy", "fantasy"},
	}
	for _, tt := range tests {
		if got := FormatTag(tt.input); got != tt.expected {
			t.Errorf("FormatTag(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-08-12", "August 12, 2024"},
		{"2024-01-02", "January 2, 2024"},
		{"sometime in 2024", "sometime in 2024"}, // unparseable passes through
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.input); got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status   library.Status
		expected string
	}{
		{library.StatusReading, "Reading"},
		{library.StatusFinished, "Finished"},
		{library.StatusWishlist, "Wishlist"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.expected {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestAssetPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com/cover.jpg", "https://example.com/cover.jpg"},
		{"covers/book.jpg", "/covers/book.jpg"},
		{"/covers/book.jpg", "/covers/book.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := AssetPath(tt.input); got != tt.expected {
			t.Errorf("AssetPath(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildURLHelper(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"books", "piranesi"}, "https://example.com/books/piranesi/"},
		{"https://example.com/", []string{"timeline"}, "https://example.com/timeline/"},
	}
	for _, tt := range tests {
		if got := buildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("buildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Shelf", URL: "https://shelf.example", Description: "books", Author: "Me"}
	got := WebsiteJsonLD(cfg)
	for _, want := range []string{`"@type":"WebSite"`, `"name":"Shelf"`, `"Person"`} {
		if !strings.Contains(got, want) {
			t.Errorf("WebsiteJsonLD missing %s: %s", want, got)
		}
	}
}

func TestBookJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Shelf", URL: "https://shelf.example", Author: "Me"}
	book := library.Book{
		Slug: "piranesi", Title: "Piranesi", Author: "Susanna Clarke",
		ISBN: "9781635575637", Pages: 272, Rating: 4,
	}
	got := BookJsonLD(cfg, book)
	for _, want := range []string{
		`"@type":"Book"`,
		`"isbn":"9781635575637"`,
		`"numberOfPages":272`,
		`"ratingValue":4`,
		`"url":"https://shelf.example/books/piranesi/"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BookJsonLD missing %s: %s", want, got)
		}
	}
}

func TestBookJsonLDOmitsUnrated(t *testing.T) {
	cfg := SiteConfig{URL: "https://shelf.example"}
	book := library.Book{Slug: "s", Title: "T", Author: "A"}
	got := BookJsonLD(cfg, book)
	if strings.Contains(got, "review") {
		t.Errorf("unrated book must not carry a review block: %s", got)
	}
}
