// Package goquery implements the landing page rewrites on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/offwiki"
)

// Ensure LandingRewriter implements offwiki.LandingRewriter at compile time.
var _ offwiki.LandingRewriter = (*LandingRewriter)(nil)

// Defaults for the vital articles landing page.
const (
	DefaultFirstHeading = "People"
	DefaultTrailer      = "View Counts"
)

// DefaultUnwrapTags are the table tags flattened on the landing page.
var DefaultUnwrapTags = []string{"table", "tbody", "thead", "tr", "td", "th"}

// LandingRewriter turns the cleaned vital articles index into a compact
// list of links. It runs after the transducer, on its output.
type LandingRewriter struct {
	unwrapTags   []string
	removeTags   []string
	firstHeading string
	trailer      string
}

// LandingOption configures a LandingRewriter.
type LandingOption func(*LandingRewriter)

// WithFirstHeading sets the text of the first h2 kept after the header.
// Everything between the header and that heading is removed.
func WithFirstHeading(text string) LandingOption {
	return func(r *LandingRewriter) {
		r.firstHeading = text
	}
}

// WithTrailer sets the prefix of the h1 that starts the removed trailer.
func WithTrailer(prefix string) LandingOption {
	return func(r *LandingRewriter) {
		r.trailer = prefix
	}
}

// NewLandingRewriter creates a LandingRewriter with the vital articles defaults.
func NewLandingRewriter(opts ...LandingOption) *LandingRewriter {
	r := &LandingRewriter{
		unwrapTags:   DefaultUnwrapTags,
		removeTags:   []string{"p"},
		firstHeading: DefaultFirstHeading,
		trailer:      DefaultTrailer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite applies the landing page rewrites to html.
func (r *LandingRewriter) Rewrite(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", offwiki.Errorf(offwiki.EPARSE, "failed to parse HTML: %v", err)
	}

	doc.Find(strings.Join(r.unwrapTags, ",")).Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithSelection(sel.Contents())
	})
	doc.Find(strings.Join(r.removeTags, ",")).Remove()

	r.removeIntro(doc)
	r.removeTrailer(doc)

	return doc.Html()
}

// removeIntro drops the siblings between the header and the first
// section heading. Nothing is removed unless both share a parent.
func (r *LandingRewriter) removeIntro(doc *goquery.Document) {
	header := doc.Find("header").First()
	heading := doc.Find("h2").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.TrimSpace(sel.Text()) == r.firstHeading
	}).First()
	if header.Length() == 0 || heading.Length() == 0 {
		return
	}
	if !header.Parent().IsSelection(heading.Parent()) || heading.Index() < header.Index() {
		return
	}
	header.NextUntilSelection(heading).Remove()
}

// removeTrailer drops the trailer heading and every sibling after it.
func (r *LandingRewriter) removeTrailer(doc *goquery.Document) {
	trailer := doc.Find("h1").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.HasPrefix(strings.TrimSpace(sel.Text()), r.trailer)
	}).First()
	if trailer.Length() == 0 {
		return
	}
	trailer.NextAll().Remove()
	trailer.Remove()
}
