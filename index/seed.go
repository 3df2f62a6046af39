package index

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// sampleBook is one starter file written on first run.
type sampleBook struct {
	filename string
	body     string
}

// sampleBooks are the starter entries seeded into an empty books directory
// so a fresh checkout renders something. They span all three statuses and
// exercise ratings, favorites, tags, dates, and purchase links.
var sampleBooks = []sampleBook{
	{
		filename: "project-hail-mary.md",
		body: `---
title: Project Hail Mary
author: Andy Weir
status: finished
rating: 5
favorite: true
tags:
  - science-fiction
  - adventure
isbn: "9780593135204"
coverImage: https://placehold.co/400x600?text=Project+Hail+Mary
amazonUrl: https://www.amazon.com/dp/0593135202
bolUrl: https://www.bol.com/nl/nl/p/project-hail-mary/9300000028735596
finishedDate: 2024-08-12
---
## A delightful return to hard sci-fi

Andy Weir is at his best when he strands a scientist in an impossible situation. *Project Hail Mary* doubles down on that formula with earnest characters, clever problem solving, and a surprisingly heartfelt friendship.

- Lots of crunchy science without getting bogged down.
- The pacing never lets up even on a re-read.
- The ending left me grinning for days.
`,
	},
	{
		filename: "legends-and-lattes.md",
		body: `---
title: Legends & Lattes
author: Travis Baldree
status: finished
rating: 4
tags:
  - cozy-fantasy
  - slice-of-life
favorite: true
isbn: "9781250886088"
coverImage: https://placehold.co/400x600?text=Legends+%26+Lattes
amazonUrl: https://www.amazon.com/dp/1250886081
bolUrl: https://www.bol.com/nl/nl/p/legends-lattes/9300000059018247
finishedDate: 2024-09-02
---
A warm and cozy fantasy about opening a coffee shop. Perfect for rainy afternoons when you want low stakes comfort.
`,
	},
	{
		filename: "the-future-is-analog.md",
		body: `---
title: The Future Is Analog
author: David Sax
status: reading
tags:
  - non-fiction
  - technology
isbn: "9781541701310"
coverImage: https://placehold.co/400x600?text=The+Future+Is+Analog
amazonUrl: https://www.amazon.com/dp/1541701313
bolUrl: https://www.bol.com/nl/nl/p/the-future-is-analog/9300000113614935
---
Currently reading. So far it's a thoughtful look at the human side of digital transformation.
`,
	},
	{
		filename: "murderbot-diaries.md",
		body: `---
title: The Murderbot Diaries
author: Martha Wells
status: wishlist
favorite: false
tags:
  - science-fiction
  - novellas
isbn: "9781250214713"
coverImage: https://placehold.co/400x600?text=Murderbot+Diaries
amazonUrl: https://www.amazon.com/dp/1250214718
bolUrl: https://www.bol.com/nl/nl/p/the-murderbot-diaries/9300000027871278
---
On the wishlist after hearing rave reviews from friends who love sarcastic protagonists.
`,
	},
}

// Seed writes the starter books into dir, but only when the directory holds
// no markdown file at all. It never touches a directory that already has
// content, so it runs exactly once per library.
func Seed(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading books directory: %w", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".md") {
			return nil
		}
	}
	for _, sample := range sampleBooks {
		path := filepath.Join(dir, sample.filename)
		if err := os.WriteFile(path, []byte(sample.body), 0o644); err != nil {
			return fmt.Errorf("writing starter book %s: %w", sample.filename, err)
		}
	}
	log.Printf("index: added %d starter books to %s", len(sampleBooks), dir)
	return nil
}
