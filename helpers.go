package bookshelf

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins path segments onto the site's canonical base URL. Every
// page on the site is addressed with a trailing slash (/books/<slug>/,
// /finished/, ...), so any joined path gets one; the bare base comes back
// untouched for the front page. An unparseable base is returned as-is so a
// misconfigured SITE_URL degrades to broken links rather than a panic.
func BuildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	joined := path.Join(segments...)
	if joined != "" {
		u.Path = path.Join(u.Path, joined)
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
	}
	return u.String()
}
