package clean

import (
	"errors"
	"io"

	"github.com/fwojciec/offwiki"
)

// ExtractLinks returns the titles of every article linked from an anchor
// in src. Only links accepted by rules.IsArticleLink are kept.
func ExtractLinks(src offwiki.EventSource, rules *offwiki.FilterRules) (*offwiki.Whitelist, error) {
	links := offwiki.NewWhitelist()
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return links, nil
		} else if err != nil {
			return nil, err
		}

		if ev.Type != offwiki.StartTagEvent || ev.Name != "a" {
			continue
		}
		href, ok := ev.Attr("href")
		if !ok || !rules.IsArticleLink(href) {
			continue
		}
		if title, _ := offwiki.ArticleTitle(href); title != "" {
			links.Add(title)
		}
	}
}
