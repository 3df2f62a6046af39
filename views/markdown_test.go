package views

import (
	"bytes"
	"strings"
	"testing"
)

func render(md string) string {
	var buf bytes.Buffer
	RenderMarkdown(&buf, md)
	return buf.String()
}

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineCode(t *testing.T) {
	got := FormatInline("use `fmt.Println` here")
	if !strings.Contains(got, "<code>fmt.Println</code>") {
		t.Errorf("FormatInline = %q", got)
	}
}

func TestFormatInlineCodeNotFormatted(t *testing.T) {
	got := FormatInline("`**not bold**`")
	if strings.Contains(got, "<strong>") {
		t.Errorf("markers inside backticks must not format: %q", got)
	}
}

func TestFormatInlineLink(t *testing.T) {
	got := FormatInline("[site](https://example.com)")
	if !strings.Contains(got, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`) {
		t.Errorf("FormatInline = %q", got)
	}
}

func TestFormatInlineRelativeLink(t *testing.T) {
	got := FormatInline("[books](/books/piranesi/)")
	if strings.Contains(got, "target=") {
		t.Errorf("relative links must not open a new tab: %q", got)
	}
	if !strings.Contains(got, `<a href="/books/piranesi/">books</a>`) {
		t.Errorf("FormatInline = %q", got)
	}
}

func TestFormatInlineUnsafeLinkDropped(t *testing.T) {
	got := FormatInline("[x](javascript:alert(1))")
	if strings.Contains(got, "javascript") {
		t.Errorf("javascript URLs must be stripped: %q", got)
	}
	if !strings.Contains(got, "x") {
		t.Errorf("link text should survive: %q", got)
	}
}

func TestFormatInlineImage(t *testing.T) {
	got := FormatInline("![cover](https://example.com/cover.jpg)")
	if !strings.Contains(got, `<img loading="lazy"`) || !strings.Contains(got, `alt="cover"`) {
		t.Errorf("FormatInline = %q", got)
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline(`<script>alert(1)</script>`)
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML must be escaped: %q", got)
	}
}

func TestRenderMarkdownHeadingsShifted(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Top", "<h2>Top</h2>"},
		{"## Section", "<h3>Section</h3>"},
		{"### Sub", "<h4>Sub</h4>"},
	}
	for _, tt := range tests {
		got := render(tt.input)
		if got != tt.expected {
			t.Errorf("render(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownParagraphs(t *testing.T) {
	got := render("first line\nsecond line\n\nnew paragraph")
	if strings.Count(got, "<p>") != 2 {
		t.Errorf("want two paragraphs: %q", got)
	}
}

func TestRenderMarkdownLists(t *testing.T) {
	got := render("- one\n- two\n")
	if !strings.Contains(got, "<ul><li>one</li><li>two</li></ul>") {
		t.Errorf("render = %q", got)
	}

	got = render("1. first\n2. second\n")
	if !strings.Contains(got, "<ol><li>first</li><li>second</li></ol>") {
		t.Errorf("render = %q", got)
	}
}

func TestRenderMarkdownBlockquote(t *testing.T) {
	got := render("> quoted text")
	if !strings.Contains(got, "<blockquote>quoted text</blockquote>") {
		t.Errorf("render = %q", got)
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	got := render("```\ncode here\n```")
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "<code>") {
		t.Errorf("render = %q", got)
	}
	if !strings.Contains(got, "code here") {
		t.Errorf("code content missing: %q", got)
	}
}

func TestRenderMarkdownCodeBlockWithLanguage(t *testing.T) {
	got := render("```go\nfmt.Println(\"hi\")\n```")
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("want language class: %q", got)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	got := render("| A | B |\n|---|---|\n| 1 | 2 |\n")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<th>A</th>") {
		t.Errorf("render = %q", got)
	}
	if !strings.Contains(got, "<td>1</td>") {
		t.Errorf("render = %q", got)
	}
}

func TestRenderMarkdownHorizontalRule(t *testing.T) {
	got := render("above\n\n---\n\nbelow")
	if !strings.Contains(got, "<hr/>") {
		t.Errorf("render = %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"/local/path", "/local/path"},
		{"#anchor", "#anchor"},
		{"javascript:alert(1)", ""},
		{"data:text/html,x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := SafeURL(tt.input)
		if got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
