// Package htmltomarkdown renders cleaned offline pages as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/offwiki"
)

// Ensure Converter implements offwiki.Converter at compile time.
var _ offwiki.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert a cleaned page to Markdown.
// Infobox tables survive cleaning, so the table plugin is enabled.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a cleaned page into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", offwiki.Errorf(offwiki.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
