// Package views renders every page of the site as a templ.Component built
// from plain buffer writes. There is no template file on disk; components
// compose by calling each other with a shared *bytes.Buffer.
package views

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/bookshelf/library"
)

// component wraps a buffer-writing function as a templ.Component.
func component(fn func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

type navItem struct {
	key   string
	label string
	href  string
	count int
}

func navItems(c library.Counts) []navItem {
	return []navItem{
		{key: "library", label: "My Books", href: "/", count: c.Total},
		{key: "timeline", label: "Timeline", href: "/timeline/", count: c.Reading + c.Finished},
		{key: "finished", label: "Finished", href: "/finished/", count: c.Finished},
		{key: "wishlist", label: "Wishlist", href: "/wishlist/", count: c.Wishlist},
		{key: "favorites", label: "Favorites", href: "/favorites/", count: c.Favorites},
	}
}

// page wraps body in the full document chrome: head metadata, sidebar
// navigation with count badges, and the footer. jsonLD is the structured
// data block for the page; pass an empty string to omit it.
func page(shell Shell, jsonLD string, body func(*bytes.Buffer)) templ.Component {
	return component(func(buf *bytes.Buffer) {
		title := shell.Meta.Title
		if title == "" {
			title = shell.Site.Name
		} else {
			title += " | " + shell.Site.Name
		}
		ogType := shell.Meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(`<meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		buf.WriteString(`<title>` + esc(title) + `</title>`)
		if shell.Meta.Description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(shell.Meta.Description) + `"/>`)
		}
		if shell.Meta.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + esc(shell.Meta.URL) + `"/>`)
			buf.WriteString(`<meta property="og:url" content="` + esc(shell.Meta.URL) + `"/>`)
		}
		buf.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
		buf.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
		if shell.Meta.Description != "" {
			buf.WriteString(`<meta property="og:description" content="` + esc(shell.Meta.Description) + `"/>`)
		}
		buf.WriteString(`<meta property="og:site_name" content="` + esc(shell.Site.Name) + `"/>`)
		buf.WriteString(`<link rel="icon" href="/static/favicon.svg" type="image/svg+xml"/>`)
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(shell.Site.Name) + `" href="/rss.xml"/>`)
		buf.WriteString(`<link rel="stylesheet" href="/static/css/site.css"/>`)
		buf.WriteString(`<script src="/static/js/search.js" defer></script>`)
		if jsonLD != "" {
			buf.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
		}
		buf.WriteString(`</head><body>`)

		buf.WriteString(`<div class="layout">`)
		buf.WriteString(`<aside class="sidebar">`)
		buf.WriteString(`<a class="site-name" href="/">` + esc(shell.Site.Name) + `</a>`)
		buf.WriteString(`<nav aria-label="Library sections"><ul>`)
		for _, item := range navItems(shell.Counts) {
			class := "nav-link"
			if item.key == shell.Active {
				class += " nav-active"
			}
			buf.WriteString(`<li><a class="` + class + `" href="` + item.href + `">`)
			buf.WriteString(`<span>` + esc(item.label) + `</span>`)
			buf.WriteString(`<span class="nav-count">` + strconv.Itoa(item.count) + `</span>`)
			buf.WriteString(`</a></li>`)
		}
		buf.WriteString(`</ul></nav>`)
		buf.WriteString(`</aside>`)

		buf.WriteString(`<main class="content">`)
		body(buf)
		buf.WriteString(`</main>`)
		buf.WriteString(`</div>`)

		buf.WriteString(`<footer class="site-footer">`)
		if shell.GeneratedAt != "" {
			buf.WriteString(`<span>Index generated ` + esc(shell.GeneratedAt) + `</span>`)
		}
		buf.WriteString(`<span><a href="/rss.xml">RSS</a></span>`)
		buf.WriteString(`</footer>`)
		buf.WriteString(`</body></html>`)
	})
}

// writeOverview emits the count summary cards on the library page.
func writeOverview(buf *bytes.Buffer, c library.Counts) {
	stat := func(label string, n int) {
		buf.WriteString(`<div class="stat"><span class="stat-value">` + strconv.Itoa(n) + `</span><span class="stat-label">` + esc(label) + `</span></div>`)
	}
	buf.WriteString(`<div class="overview">`)
	stat("Books", c.Total)
	stat("Reading", c.Reading)
	stat("Finished", c.Finished)
	stat("Wishlist", c.Wishlist)
	stat("Favorites", c.Favorites)
	buf.WriteString(`</div>`)
}

// writeTagFilter emits the tag cloud with per-tag counts. The active tag
// links back to the unfiltered view so clicking it again clears the filter.
func writeTagFilter(buf *bytes.Buffer, tags []library.TagCount, activeTag, query string) {
	if len(tags) == 0 {
		return
	}
	href := func(tag string) string {
		v := url.Values{}
		if tag != "" {
			v.Set("tag", tag)
		}
		if query != "" {
			v.Set("q", query)
		}
		if len(v) == 0 {
			return "/"
		}
		return "/?" + v.Encode()
	}
	buf.WriteString(`<div class="tag-filter">`)
	allClass := "tag-pill"
	if activeTag == "" {
		allClass += " tag-pill-active"
	}
	buf.WriteString(`<a class="` + allClass + `" href="` + esc(href("")) + `">All</a>`)
	for _, t := range tags {
		class := "tag-pill"
		target := t.Name
		if t.Name == activeTag {
			class += " tag-pill-active"
			target = ""
		}
		buf.WriteString(`<a class="` + class + `" href="` + esc(href(target)) + `">`)
		buf.WriteString(esc(FormatTag(t.Name)) + ` <span class="tag-pill-count">` + strconv.Itoa(t.Count) + `</span></a>`)
	}
	buf.WriteString(`</div>`)
}

// writeLibraryResults emits the filterable grid section of the library page.
// It carries the id htmx swaps on search input.
func writeLibraryResults(buf *bytes.Buffer, books []library.Book, query, activeTag string) {
	buf.WriteString(`<section id="results">`)
	empty := "No books yet."
	emptyDesc := "Add a markdown file to the books directory and rebuild the index."
	if query != "" || activeTag != "" {
		empty = "No books match."
		emptyDesc = "Try a different search or clear the tag filter."
	}
	writeBookGrid(buf, books, true, empty, emptyDesc)
	buf.WriteString(`</section>`)
}

// LibraryResults is the partial returned for htmx search requests on the
// library page.
func LibraryResults(books []library.Book, query, activeTag string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeLibraryResults(buf, books, query, activeTag)
	})
}

// MyBooks renders the main library page: overview counts, search, tag
// filter, and the full book grid.
func MyBooks(shell Shell, books []library.Book, tags []library.TagCount, activeTag, query string) templ.Component {
	return page(shell, WebsiteJsonLD(shell.Site), func(buf *bytes.Buffer) {
		writePageHeader(buf, "My Books", "Everything on the shelf, one markdown file per book.", nil)
		writeOverview(buf, shell.Counts)
		writeSearchForm(buf, "/", query, "Search title, author, review, or tags", map[string]string{"tag": activeTag})
		writeTagFilter(buf, tags, activeTag, query)
		writeLibraryResults(buf, books, query, activeTag)
	})
}

// writeTimelineList emits the vertical timeline of reading activity.
func writeTimelineList(buf *bytes.Buffer, books []library.Book) {
	buf.WriteString(`<section id="results">`)
	if len(books) == 0 {
		writeEmptyState(buf, "Nothing on the timeline yet.", "Start or finish a book and it will show up here.")
	} else {
		buf.WriteString(`<div class="timeline">`)
		for _, b := range books {
			writeTimelineItem(buf, b)
		}
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</section>`)
}

// Timeline renders the reading journey: current reads first, then finished
// books most recent first.
func Timeline(shell Shell, books []library.Book) templ.Component {
	return page(shell, WebsiteJsonLD(shell.Site), func(buf *bytes.Buffer) {
		writePageHeader(buf, "Timeline", "The reading journey, newest first.", nil)
		writeTimelineList(buf, books)
	})
}

// writeSortToggle emits the rating sort direction switch on the finished
// shelf. The inactive direction is a link that preserves the current query.
func writeSortToggle(buf *bytes.Buffer, query string, descending bool) {
	href := func(dir string) string {
		v := url.Values{}
		v.Set("sort", dir)
		if query != "" {
			v.Set("q", query)
		}
		return "/finished/?" + v.Encode()
	}
	option := func(dir, label string, active bool) {
		if active {
			buf.WriteString(`<span class="sort-option sort-active">` + esc(label) + `</span>`)
			return
		}
		buf.WriteString(`<a class="sort-option" href="` + esc(href(dir)) + `">` + esc(label) + `</a>`)
	}
	buf.WriteString(`<div class="sort-toggle" aria-label="Sort by rating">`)
	option("desc", "Highest rated", descending)
	option("asc", "Lowest rated", !descending)
	buf.WriteString(`</div>`)
}

// FinishedResults is the partial returned for htmx search requests on the
// finished shelf.
func FinishedResults(books []library.Book, query string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeFinishedResults(buf, books, query)
	})
}

func writeFinishedResults(buf *bytes.Buffer, books []library.Book, query string) {
	buf.WriteString(`<section id="results">`)
	empty := "No finished books yet."
	emptyDesc := "Mark a book as finished and it will land on this shelf."
	if query != "" {
		empty = "No finished books match."
		emptyDesc = "Try a different search."
	}
	writeBookGrid(buf, books, true, empty, emptyDesc)
	buf.WriteString(`</section>`)
}

// Finished renders the finished shelf sorted by rating.
func Finished(shell Shell, books []library.Book, query string, descending bool) templ.Component {
	return page(shell, WebsiteJsonLD(shell.Site), func(buf *bytes.Buffer) {
		writePageHeader(buf, "Finished", "Every book read to the end, ordered by rating.", func(actions *bytes.Buffer) {
			writeSortToggle(actions, query, descending)
		})
		sortParam := "asc"
		if descending {
			sortParam = "desc"
		}
		writeSearchForm(buf, "/finished/", query, "Search finished books", map[string]string{"sort": sortParam})
		writeFinishedResults(buf, books, query)
	})
}

// StatusResults is the partial returned for htmx search requests on the
// wishlist and favorites pages.
func StatusResults(books []library.Book, query, emptyTitle, emptyDescription string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeStatusResults(buf, books, query, emptyTitle, emptyDescription)
	})
}

func writeStatusResults(buf *bytes.Buffer, books []library.Book, query, emptyTitle, emptyDescription string) {
	buf.WriteString(`<section id="results">`)
	if query != "" {
		emptyTitle = "No books match."
		emptyDescription = "Try a different search."
	}
	writeBookGrid(buf, books, true, emptyTitle, emptyDescription)
	buf.WriteString(`</section>`)
}

// Wishlist renders the books waiting to be read or bought.
func Wishlist(shell Shell, books []library.Book, query string) templ.Component {
	return page(shell, WebsiteJsonLD(shell.Site), func(buf *bytes.Buffer) {
		writePageHeader(buf, "Wishlist", "Books to read next.", nil)
		writeSearchForm(buf, "/wishlist/", query, "Search the wishlist", nil)
		writeStatusResults(buf, books, query,
			"The wishlist is empty.", "Add a book with status wishlist to start one.")
	})
}

// Favorites renders the books explicitly marked as favorites.
func Favorites(shell Shell, books []library.Book, query string) templ.Component {
	return page(shell, WebsiteJsonLD(shell.Site), func(buf *bytes.Buffer) {
		writePageHeader(buf, "Favorites", "The books worth pressing into other people's hands.", nil)
		writeSearchForm(buf, "/favorites/", query, "Search favorites", nil)
		writeStatusResults(buf, books, query,
			"No favorites yet.", "Set favorite: true on a book to pin it here.")
	})
}

// Detail renders a single book's page: cover, metadata, review, purchase
// links, and related books.
func Detail(shell Shell, book library.Book, related []library.Book) templ.Component {
	return page(shell, BookJsonLD(shell.Site, book), func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="book-detail">`)
		buf.WriteString(`<div class="book-detail-top">`)
		if book.CoverImage != "" {
			buf.WriteString(`<div class="book-detail-cover"><img alt="Cover of ` + esc(book.Title) + `" src="` + esc(AssetPath(book.CoverImage)) + `"/></div>`)
		}
		buf.WriteString(`<div class="book-detail-meta">`)
		buf.WriteString(`<h1>` + esc(book.Title))
		if book.IsFavorite() {
			buf.WriteString(` <span class="favorite-star" title="Favorite">&#9733;</span>`)
		}
		buf.WriteString(`</h1>`)
		buf.WriteString(`<p class="book-author">by ` + esc(book.Author) + `</p>`)
		writeStatusChip(buf, book.Status)
		writeRatingStars(buf, book.Rating)
		writeTagBadges(buf, book.Tags)

		writeFactList(buf, book)
		writeBuyLinks(buf, book)
		buf.WriteString(`</div></div>`)

		if book.HasReview {
			buf.WriteString(`<section class="book-review"><h2>Review</h2>`)
			RenderMarkdown(buf, book.Review)
			buf.WriteString(`</section>`)
		}

		if len(related) > 0 {
			buf.WriteString(`<section class="related-books"><h2>Related books</h2>`)
			writeBookGrid(buf, related, false, "", "")
			buf.WriteString(`</section>`)
		}
		buf.WriteString(`</article>`)
	})
}

// writeFactList emits the definition list of optional book facts.
func writeFactList(buf *bytes.Buffer, book library.Book) {
	type fact struct{ label, value string }
	facts := []fact{}
	if book.StartedDate != "" {
		facts = append(facts, fact{"Started", FormatDate(book.StartedDate)})
	}
	if book.FinishedDate != "" {
		facts = append(facts, fact{"Finished", FormatDate(book.FinishedDate)})
	}
	if book.Published != "" {
		facts = append(facts, fact{"Published", book.Published})
	}
	if book.Pages > 0 {
		facts = append(facts, fact{"Pages", strconv.Itoa(book.Pages)})
	}
	if book.ISBN != "" {
		facts = append(facts, fact{"ISBN", book.ISBN})
	}
	if len(facts) == 0 {
		return
	}
	buf.WriteString(`<dl class="book-facts">`)
	for _, f := range facts {
		buf.WriteString(`<div><dt>` + esc(f.label) + `</dt><dd>` + esc(f.value) + `</dd></div>`)
	}
	buf.WriteString(`</dl>`)
}

// writeBuyLinks emits outbound purchase links when present.
func writeBuyLinks(buf *bytes.Buffer, book library.Book) {
	if book.AmazonURL == "" && book.BolURL == "" {
		return
	}
	buf.WriteString(`<div class="buy-links">`)
	if book.AmazonURL != "" {
		buf.WriteString(`<a class="buy-link" href="` + esc(book.AmazonURL) + `" target="_blank" rel="noopener noreferrer">Amazon</a>`)
	}
	if book.BolURL != "" {
		buf.WriteString(`<a class="buy-link" href="` + esc(book.BolURL) + `" target="_blank" rel="noopener noreferrer">bol.com</a>`)
	}
	buf.WriteString(`</div>`)
}

// NotFound renders the 404 page.
func NotFound(shell Shell) templ.Component {
	return page(shell, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="error-page">`)
		buf.WriteString(`<h1>Page not found</h1>`)
		buf.WriteString(`<p>That page does not exist. It may have been moved or removed.</p>`)
		buf.WriteString(`<p><a href="/">Back to the library</a></p>`)
		buf.WriteString(`</div>`)
	})
}

// ServerError renders the 500 page.
func ServerError(shell Shell) templ.Component {
	return page(shell, "", func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="error-page">`)
		buf.WriteString(`<h1>Something went wrong</h1>`)
		buf.WriteString(`<p>An unexpected error occurred. Please try again.</p>`)
		buf.WriteString(`<p><a href="/">Back to the library</a></p>`)
		buf.WriteString(`</div>`)
	})
}
