package views

import (
	"bytes"
	"html"
	"strconv"

	"github.com/eringen/bookshelf/library"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// writeRatingStars emits a five-star rating row. A zero rating renders
// nothing: unrated books simply have no stars.
func writeRatingStars(buf *bytes.Buffer, rating int) {
	if rating <= 0 {
		return
	}
	buf.WriteString(`<span class="rating" aria-label="Rated ` + strconv.Itoa(rating) + ` out of 5">`)
	for i := 1; i <= 5; i++ {
		if i <= rating {
			buf.WriteString(`<span class="star star-filled">&#9733;</span>`)
		} else {
			buf.WriteString(`<span class="star">&#9734;</span>`)
		}
	}
	buf.WriteString(`<span class="rating-value">` + strconv.Itoa(rating) + `/5</span>`)
	buf.WriteString(`</span>`)
}

// writeStatusChip emits the small status pill shown on cards and detail pages.
func writeStatusChip(buf *bytes.Buffer, s library.Status) {
	buf.WriteString(`<span class="status-chip status-` + esc(string(s)) + `">` + esc(StatusLabel(s)) + `</span>`)
}

// writeTagBadges emits plain (non-filtering) tag badges.
func writeTagBadges(buf *bytes.Buffer, tags []string) {
	if len(tags) == 0 {
		return
	}
	buf.WriteString(`<span class="tags">`)
	for _, t := range tags {
		buf.WriteString(`<span class="tag">` + esc(FormatTag(t)) + `</span>`)
	}
	buf.WriteString(`</span>`)
}

// writeBookCard emits one card linking to the book's detail page.
func writeBookCard(buf *bytes.Buffer, b library.Book, highlightFavorite bool) {
	buf.WriteString(`<article class="book-card">`)
	buf.WriteString(`<a href="` + esc(b.Link()) + `">`)
	if b.CoverImage != "" {
		buf.WriteString(`<span class="book-cover"><img loading="lazy" alt="Cover of ` + esc(b.Title) + `" src="` + esc(AssetPath(b.CoverImage)) + `"/></span>`)
	}
	buf.WriteString(`<span class="book-card-body">`)
	buf.WriteString(`<span class="book-title">` + esc(b.Title))
	if highlightFavorite && b.IsFavorite() {
		buf.WriteString(` <span class="favorite-star" title="Favorite">&#9733;</span>`)
	}
	buf.WriteString(`</span>`)
	buf.WriteString(`<span class="book-author">by ` + esc(b.Author) + `</span>`)
	writeStatusChip(buf, b.Status)
	writeRatingStars(buf, b.Rating)
	writeTagBadges(buf, b.Tags)
	buf.WriteString(`</span></a></article>`)
}

// writeEmptyState emits the dashed placeholder box used when a view has no
// books to show.
func writeEmptyState(buf *bytes.Buffer, title, description string) {
	buf.WriteString(`<div class="empty-state">`)
	buf.WriteString(`<p class="empty-title">` + esc(title) + `</p>`)
	if description != "" {
		buf.WriteString(`<p class="empty-description">` + esc(description) + `</p>`)
	}
	buf.WriteString(`</div>`)
}

// writeBookGrid emits a grid of book cards, or an empty state.
func writeBookGrid(buf *bytes.Buffer, books []library.Book, highlightFavorite bool, emptyTitle, emptyDescription string) {
	if len(books) == 0 {
		writeEmptyState(buf, emptyTitle, emptyDescription)
		return
	}
	buf.WriteString(`<div class="book-grid">`)
	for _, b := range books {
		writeBookCard(buf, b, highlightFavorite)
	}
	buf.WriteString(`</div>`)
}

// writeSearchForm emits the free-text search box. The form is a plain GET;
// search.js enhances it to swap just the results section as you type.
func writeSearchForm(buf *bytes.Buffer, action, query, placeholder string, hidden map[string]string) {
	buf.WriteString(`<form class="book-search" method="get" action="` + esc(action) + `">`)
	for name, value := range hidden {
		if value != "" {
			buf.WriteString(`<input type="hidden" name="` + esc(name) + `" value="` + esc(value) + `"/>`)
		}
	}
	buf.WriteString(`<input type="search" name="q" value="` + esc(query) + `" placeholder="` + esc(placeholder) + `" aria-label="Search books"/>`)
	buf.WriteString(`</form>`)
}

// writePageHeader emits the page title block with optional action content.
func writePageHeader(buf *bytes.Buffer, title, description string, actions func(*bytes.Buffer)) {
	buf.WriteString(`<header class="page-header">`)
	buf.WriteString(`<div class="page-header-text">`)
	buf.WriteString(`<h1>` + esc(title) + `</h1>`)
	if description != "" {
		buf.WriteString(`<p>` + esc(description) + `</p>`)
	}
	buf.WriteString(`</div>`)
	if actions != nil {
		buf.WriteString(`<div class="page-header-actions">`)
		actions(buf)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</header>`)
}

// writeTimelineItem emits one entry in the reading-journey view.
func writeTimelineItem(buf *bytes.Buffer, b library.Book) {
	isReading := b.Status == library.StatusReading
	class := "timeline-item"
	if isReading {
		class += " timeline-reading"
	} else if b.IsFavorite() {
		class += " timeline-favorite"
	}
	buf.WriteString(`<div class="` + class + `">`)
	buf.WriteString(`<span class="timeline-dot"></span>`)
	buf.WriteString(`<a class="timeline-card" href="` + esc(b.Link()) + `">`)
	if b.CoverImage != "" {
		buf.WriteString(`<span class="timeline-cover"><img loading="lazy" alt="` + esc(b.Title) + `" src="` + esc(AssetPath(b.CoverImage)) + `"/></span>`)
	}
	buf.WriteString(`<span class="timeline-body">`)
	buf.WriteString(`<span class="book-title">` + esc(b.Title) + `</span>`)
	buf.WriteString(`<span class="book-author">by ` + esc(b.Author) + `</span>`)
	if isReading {
		buf.WriteString(`<span class="status-chip status-reading">Currently Reading</span>`)
	}
	if date := timelineDisplayDate(b); date != "" {
		buf.WriteString(`<span class="timeline-date">` + esc(FormatDate(date)) + `</span>`)
	}
	writeRatingStars(buf, b.Rating)
	writeTagBadges(buf, b.Tags)
	buf.WriteString(`</span></a></div>`)
}

// timelineDisplayDate is the date shown on a timeline card: the finished
// date when present, otherwise the started date.
func timelineDisplayDate(b library.Book) string {
	if b.FinishedDate != "" {
		return b.FinishedDate
	}
	return b.StartedDate
}
