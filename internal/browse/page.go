package browse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the visible content of a rendered page: the document title and
// the collapsed body text.
type Page struct {
	Title string
	Text  string
}

// ParsePage extracts the title and visible text from raw HTML.
func ParsePage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	// Drop non-visible elements before collecting text
	doc.Find("script, style, noscript, template").Remove()

	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	return &Page{
		Title: title,
		Text:  strings.Join(strings.Fields(text), " "),
	}, nil
}

// clipText truncates s to at most n bytes
func clipText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
