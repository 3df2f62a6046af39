package bookshelf

import "embed"

// embeddedAssets contains the static assets the pages depend on out of the
// box: site.css, search.js, favicon.svg, robots.txt. Any of them can be
// overridden by placing a file with the same relative path in StaticDir.
//
//go:embed embedded/*
var embeddedAssets embed.FS
