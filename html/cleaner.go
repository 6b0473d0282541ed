package html

import (
	"strings"

	"github.com/fwojciec/offwiki"
	"github.com/fwojciec/offwiki/clean"
)

// Compile-time interface verification.
var (
	_ offwiki.Cleaner       = (*Cleaner)(nil)
	_ offwiki.LinkExtractor = (*LinkExtractor)(nil)
)

// Cleaner rewrites raw article HTML into an offline page.
// It is safe for concurrent use; each call gets its own Transducer.
type Cleaner struct {
	rules *offwiki.FilterRules
	head  string
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithHead replaces the fragment inserted after <head>.
// Defaults to clean.DefaultHead.
func WithHead(head string) CleanerOption {
	return func(c *Cleaner) {
		c.head = head
	}
}

// NewCleaner returns a Cleaner applying rules.
func NewCleaner(rules *offwiki.FilterRules, opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		rules: rules,
		head:  clean.DefaultHead,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean tokenizes raw and returns the rewritten document. Links to titles
// outside whitelist are unwrapped.
func (c *Cleaner) Clean(raw string, whitelist *offwiki.Whitelist) (string, error) {
	return clean.Transduce(NewTokenizer(strings.NewReader(raw), c.rules), c.rules, whitelist, c.head)
}

// LinkExtractor collects article titles from index pages.
type LinkExtractor struct {
	rules *offwiki.FilterRules
}

// NewLinkExtractor returns a LinkExtractor applying rules.
func NewLinkExtractor(rules *offwiki.FilterRules) *LinkExtractor {
	return &LinkExtractor{rules: rules}
}

// ExtractLinks returns the set of article titles linked from raw.
func (e *LinkExtractor) ExtractLinks(raw string) (*offwiki.Whitelist, error) {
	return clean.ExtractLinks(NewTokenizer(strings.NewReader(raw), e.rules), e.rules)
}
