package library

import "testing"

func TestSortByTitleLocaleOrder(t *testing.T) {
	books := []Book{
		{Title: "Zoo"},
		{Title: "apple"},
		{Title: "Banana"},
	}
	SortByTitle(books)
	want := []string{"apple", "Banana", "Zoo"}
	for i, w := range want {
		if books[i].Title != w {
			t.Errorf("position %d = %q, want %q", i, books[i].Title, w)
		}
	}
}

func TestSortFinishedDescending(t *testing.T) {
	books := []Book{
		{Title: "B", Rating: 5},
		{Title: "A", Rating: 3},
		{Title: "C", Rating: 5},
		{Title: "D"},
	}
	got := SortFinished(books, true)
	// Rating descending, ties break by title descending.
	want := []string{"C", "B", "A", "D"}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("desc position %d = %q, want %q", i, got[i].Title, w)
		}
	}
	// Input slice untouched.
	if books[0].Title != "B" {
		t.Error("SortFinished must not mutate its input")
	}
}

func TestSortFinishedAscending(t *testing.T) {
	books := []Book{
		{Title: "B", Rating: 5},
		{Title: "A", Rating: 3},
		{Title: "C", Rating: 5},
		{Title: "D"},
	}
	got := SortFinished(books, false)
	// Missing rating sorts as zero, ties break by title ascending.
	want := []string{"D", "A", "B", "C"}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("asc position %d = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestTags(t *testing.T) {
	idx := testIndex()
	tags := idx.Tags()
	want := []string{"classics", "fantasy", "mystery", "non-fiction", "technology"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %d, want %d", len(tags), len(want))
	}
	// Locale ascending order.
	for i, w := range want {
		if tags[i].Name != w {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i].Name, w)
		}
	}
	for _, tc := range tags {
		if tc.Name == "fantasy" && tc.Count != 3 {
			t.Errorf("fantasy count = %d, want 3", tc.Count)
		}
	}
}

func TestTimelineOrder(t *testing.T) {
	idx := testIndex()
	timeline := idx.Timeline()
	if len(timeline) != 3 {
		t.Fatalf("timeline = %d entries, want 3 (wishlist excluded)", len(timeline))
	}
	// Reading first, then finished most recent first.
	want := []string{"the-shallows", "piranesi", "a-wizard-of-earthsea"}
	for i, w := range want {
		if timeline[i].Slug != w {
			t.Errorf("timeline[%d] = %q, want %q", i, timeline[i].Slug, w)
		}
	}
}

func TestTimelineDateFallback(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want string
	}{
		{"finished date wins", Book{FinishedDate: "2024-01-02", StartedDate: "2024-01-01"}, "2024-01-02"},
		{"started date next", Book{StartedDate: "2024-01-01", UpdatedAt: strPtr("2024-06-01T00:00:00.000Z")}, "2024-01-01"},
		{"updatedAt last", Book{UpdatedAt: strPtr("2024-06-01T00:00:00.000Z")}, "2024-06-01T00:00:00.000Z"},
		{"nothing", Book{}, ""},
	}
	for _, tt := range tests {
		if got := timelineDate(tt.book); got != tt.want {
			t.Errorf("%s: timelineDate = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRelated(t *testing.T) {
	idx := testIndex()
	current, _ := idx.BySlug("a-wizard-of-earthsea")
	related := idx.Related(current, 3)
	if len(related) != 2 {
		t.Fatalf("related = %d, want 2", len(related))
	}
	if related[0].Slug != "piranesi" || related[1].Slug != "tress-of-the-emerald-sea" {
		t.Errorf("related order = %s, %s", related[0].Slug, related[1].Slug)
	}
	for _, r := range related {
		if r.Slug == current.Slug {
			t.Error("related must never include the current book")
		}
	}
}

func TestRelatedLimit(t *testing.T) {
	idx := &Index{Books: []Book{
		{Slug: "a", Tags: []string{"x"}},
		{Slug: "b", Tags: []string{"x"}},
		{Slug: "c", Tags: []string{"x"}},
		{Slug: "d", Tags: []string{"x"}},
		{Slug: "e", Tags: []string{"x"}},
	}}
	current := idx.Books[0]
	related := idx.Related(current, 3)
	if len(related) != 3 {
		t.Errorf("related = %d, want limit 3", len(related))
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  Hello World  "); got != "hello world" {
		t.Errorf("NormalizeQuery = %q", got)
	}
}
