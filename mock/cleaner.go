package mock

import "github.com/fwojciec/offwiki"

var (
	_ offwiki.Cleaner         = (*Cleaner)(nil)
	_ offwiki.LinkExtractor   = (*LinkExtractor)(nil)
	_ offwiki.LandingRewriter = (*LandingRewriter)(nil)
	_ offwiki.Converter       = (*Converter)(nil)
)

// Cleaner is a mock implementation of offwiki.Cleaner.
type Cleaner struct {
	CleanFn func(html string, whitelist *offwiki.Whitelist) (string, error)
}

func (c *Cleaner) Clean(html string, whitelist *offwiki.Whitelist) (string, error) {
	return c.CleanFn(html, whitelist)
}

// LinkExtractor is a mock implementation of offwiki.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) (*offwiki.Whitelist, error)
}

func (e *LinkExtractor) ExtractLinks(html string) (*offwiki.Whitelist, error) {
	return e.ExtractLinksFn(html)
}

// LandingRewriter is a mock implementation of offwiki.LandingRewriter.
type LandingRewriter struct {
	RewriteFn func(html string) (string, error)
}

func (r *LandingRewriter) Rewrite(html string) (string, error) {
	return r.RewriteFn(html)
}

// Converter is a mock implementation of offwiki.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
