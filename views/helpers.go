package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eringen/bookshelf/library"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FormatTag turns a hyphenated tag into display form ("cozy-fantasy" ->
// "cozy fantasy").
func FormatTag(tag string) string {
	return strings.ReplaceAll(tag, "-", " ")
}

// FormatDate renders an ISO calendar date as a long-form date ("August 12,
// 2024"). Values that do not parse come back unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}

// StatusLabel returns the display name for a reading status.
func StatusLabel(s library.Status) string {
	switch s {
	case library.StatusReading:
		return "Reading"
	case library.StatusFinished:
		return "Finished"
	case library.StatusWishlist:
		return "Wishlist"
	}
	return string(s)
}

// AssetPath resolves a cover image reference: absolute URLs pass through,
// local paths are rooted so they resolve under the static file handler.
func AssetPath(p string) string {
	if p == "" {
		return ""
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BookJsonLD produces a Schema.org Book JSON-LD block for a detail page.
func BookJsonLD(cfg SiteConfig, book library.Book) string {
	bookURL := buildURL(cfg.URL, "books", book.Slug)
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Book",
		"name":     book.Title,
		"url":      bookURL,
		"author": map[string]string{
			"@type": "Person",
			"name":  book.Author,
		},
	}
	if book.ISBN != "" {
		data["isbn"] = book.ISBN
	}
	if book.Pages > 0 {
		data["numberOfPages"] = book.Pages
	}
	if book.Published != "" {
		data["datePublished"] = book.Published
	}
	if book.CoverImage != "" {
		data["image"] = AssetPath(book.CoverImage)
	}
	if book.Rating > 0 {
		data["review"] = map[string]interface{}{
			"@type": "Review",
			"reviewRating": map[string]interface{}{
				"@type":       "Rating",
				"ratingValue": book.Rating,
				"bestRating":  5,
			},
			"author": map[string]string{
				"@type": "Person",
				"name":  cfg.Author,
			},
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
