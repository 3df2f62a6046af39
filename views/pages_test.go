package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/bookshelf/library"
)

func renderComponent(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func boolPtr(b bool) *bool { return &b }

func testShell(active string) Shell {
	return Shell{
		Site:   SiteConfig{Name: "Shelf", URL: "https://shelf.example"},
		Meta:   PageMeta{Title: "Test", Description: "d", URL: "https://shelf.example/"},
		Active: active,
		Counts: library.Counts{Total: 2, Reading: 1, Finished: 1},
	}
}

func testBooks() []library.Book {
	return []library.Book{
		{
			Slug: "piranesi", Title: "Piranesi", Author: "Susanna Clarke",
			Status: library.StatusFinished, Rating: 4,
			Tags: []string{"fantasy"}, Favorite: boolPtr(true),
		},
		{
			Slug: "the-shallows", Title: "The Shallows", Author: "Nicholas Carr",
			Status: library.StatusReading, Tags: []string{"non-fiction"},
		},
	}
}

func TestMyBooksPage(t *testing.T) {
	tags := []library.TagCount{{Name: "fantasy", Count: 1}, {Name: "non-fiction", Count: 1}}
	got := renderComponent(t, MyBooks(testShell("library"), testBooks(), tags, "", ""))

	for _, want := range []string{
		"<!DOCTYPE html>",
		"My Books",
		`href="/books/piranesi/"`,
		"Susanna Clarke",
		`class="tag-pill"`,
		`id="results"`,
		`class="nav-link nav-active"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MyBooks missing %q", want)
		}
	}
}

func TestMyBooksEscapesTitles(t *testing.T) {
	books := []library.Book{{
		Slug: "x", Title: `<script>alert(1)</script>`, Author: "A",
		Status: library.StatusReading,
	}}
	got := renderComponent(t, MyBooks(testShell("library"), books, nil, "", ""))
	if strings.Contains(got, "<script>alert(1)") {
		t.Error("titles must be HTML-escaped")
	}
}

func TestLibraryResultsPartialHasNoChrome(t *testing.T) {
	got := renderComponent(t, LibraryResults(testBooks(), "", ""))
	if strings.Contains(got, "<!DOCTYPE html>") {
		t.Error("partial must not include the page shell")
	}
	if !strings.Contains(got, `id="results"`) {
		t.Error("partial must carry the swap target id")
	}
}

func TestEmptyLibraryState(t *testing.T) {
	got := renderComponent(t, LibraryResults(nil, "", ""))
	if !strings.Contains(got, "No books yet.") {
		t.Errorf("want empty state, got %q", got)
	}
	got = renderComponent(t, LibraryResults(nil, "zebra", ""))
	if !strings.Contains(got, "No books match.") {
		t.Errorf("want search empty state, got %q", got)
	}
}

func TestTimelinePage(t *testing.T) {
	got := renderComponent(t, Timeline(testShell("timeline"), testBooks()))
	if !strings.Contains(got, "Currently Reading") {
		// The reading book renders a reading chip on its timeline card.
		t.Error("timeline should mark books in progress")
	}
	if !strings.Contains(got, `class="timeline"`) {
		t.Error("timeline wrapper missing")
	}
}

func TestFinishedPageSortToggle(t *testing.T) {
	got := renderComponent(t, Finished(testShell("finished"), testBooks(), "", true))
	if !strings.Contains(got, "Highest rated") || !strings.Contains(got, "Lowest rated") {
		t.Error("sort toggle missing")
	}
	if !strings.Contains(got, `href="/finished/?sort=asc"`) {
		t.Error("inactive direction must link to the flipped sort")
	}
}

func TestDetailPage(t *testing.T) {
	book := library.Book{
		Slug: "piranesi", Title: "Piranesi", Author: "Susanna Clarke",
		Status: library.StatusFinished, Rating: 4, Tags: []string{"fantasy"},
		FinishedDate: "2024-05-02", ISBN: "9781635575637", Pages: 272,
		AmazonURL: "https://www.amazon.com/dp/1",
		Review:    "## Thoughts\n\nThe House is **kind**.", HasReview: true,
	}
	related := []library.Book{{Slug: "other", Title: "Other", Author: "B", Status: library.StatusFinished, Tags: []string{"fantasy"}}}
	shell := testShell("library")
	shell.Meta.OGType = "book"
	got := renderComponent(t, Detail(shell, book, related))

	for _, want := range []string{
		"<h1>Piranesi",
		"May 2, 2024",
		"9781635575637",
		"<h3>Thoughts</h3>",       // review headings shift down
		"<strong>kind</strong>",
		"Related books",
		`href="/books/other/"`,
		`"@type":"Book"`,
		`property="og:type" content="book"`,
		"Amazon",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Detail missing %q", want)
		}
	}
}

func TestDetailPageWithoutReview(t *testing.T) {
	book := library.Book{Slug: "s", Title: "T", Author: "A", Status: library.StatusWishlist}
	got := renderComponent(t, Detail(testShell("library"), book, nil))
	if strings.Contains(got, "book-review") {
		t.Error("reviewless book must not render a review section")
	}
	if strings.Contains(got, "Related books") {
		t.Error("no related section without related books")
	}
}

func TestNotFoundPage(t *testing.T) {
	got := renderComponent(t, NotFound(testShell("")))
	if !strings.Contains(got, "Page not found") {
		t.Errorf("got %q", got)
	}
}

func TestNavCounts(t *testing.T) {
	shell := testShell("library")
	shell.Counts = library.Counts{Total: 7, Reading: 2, Finished: 3, Wishlist: 2, Favorites: 1}
	got := renderComponent(t, MyBooks(shell, nil, nil, "", ""))
	if !strings.Contains(got, `<span class="nav-count">7</span>`) {
		t.Error("sidebar should show the total count badge")
	}
}
