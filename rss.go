package bookshelf

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/bookshelf/library"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves the finished shelf as an RSS feed, most recently
// finished first.
func (a *App) handleFeed(c echo.Context) error {
	base := a.Config.Site.URL
	finished := a.Library.Timeline()

	items := make([]rssItem, 0, len(finished))
	for _, b := range finished {
		if b.Status != library.StatusFinished {
			continue
		}
		pubDate := ""
		if t, err := time.Parse("2006-01-02", b.FinishedDate); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		bookURL := BuildURL(base, "books", b.Slug)
		description := b.Title + " by " + b.Author
		if b.HasReview {
			description = b.Review
		}
		items = append(items, rssItem{
			Title:       b.Title + " by " + b.Author,
			Link:        bookURL,
			Description: description,
			PubDate:     pubDate,
			GUID:        bookURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Site.Name,
			Link:        base,
			Description: a.Config.Site.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
