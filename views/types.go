package views

import "github.com/eringen/bookshelf/library"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to the views so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Bookshelf")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "book"
}

// Shell bundles everything the page chrome needs: site settings, page
// metadata, the active sidebar entry, the library counts for the nav badges,
// and the index build timestamp shown in the footer.
type Shell struct {
	Site        SiteConfig
	Meta        PageMeta
	Active      string // "library", "timeline", "finished", "wishlist", "favorites"
	Counts      library.Counts
	GeneratedAt string
}
