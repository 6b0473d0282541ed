package offwiki

import (
	"slices"
	"strings"
)

// InternalLinkPrefix marks a same-language article link in Wikipedia's
// mobile HTML.
const InternalLinkPrefix = "./"

// RuleSpec lists the filtering rules as plain slices. It is the editable
// form of FilterRules, used for defaults and rule files.
type RuleSpec struct {
	IgnoredTags       []string `yaml:"ignoredTags"`
	IgnoredClasses    []string `yaml:"ignoredClasses"`
	IgnoredRoles      []string `yaml:"ignoredRoles"`
	IgnoredHeadings   []string `yaml:"ignoredHeadings"`
	IgnoredNamespaces []string `yaml:"ignoredNamespaces"`
	UnwrapTags        []string `yaml:"unwrapTags"`
	VoidTags          []string `yaml:"voidTags"`
	SkippedTags       []string `yaml:"skippedTags"`
}

// DefaultRuleSpec returns the rule set used for Wikipedia mobile HTML.
func DefaultRuleSpec() RuleSpec {
	return RuleSpec{
		IgnoredTags: []string{"script", "style", "figure", "map", "figure-inline", "annotation"},
		IgnoredClasses: []string{
			"pagelib_collapse_table_container",
			"mw-ref",
			"thumb",
			"gallery",
			"ambox",
			"noprint",
			"flagicon",
		},
		IgnoredRoles: []string{"note"},
		IgnoredHeadings: []string{
			"notes",
			"references",
			"bibliography",
			"external links",
			"further reading",
			"see also",
			"gallery",
			"footnotes",
			"sources",
		},
		IgnoredNamespaces: []string{
			"Wikipedia:",
			"Wikipedia_talk:",
			"Talk:",
			"File:",
			"User:",
			"Template:",
			"Category:",
		},
		UnwrapTags: []string{"span", "div", "section"},
		VoidTags: []string{
			"area", "base", "br", "col", "embed", "hr", "img",
			"input", "link", "meta", "param", "source", "track", "wbr",
		},
		SkippedTags: []string{"base", "meta", "link", "br"},
	}
}

// FilterRules is the immutable configuration shared by every transduction.
// It is safe for concurrent use.
type FilterRules struct {
	ignoredTags       map[string]struct{}
	ignoredClasses    []string
	ignoredRoles      map[string]struct{}
	ignoredHeadings   map[string]struct{}
	ignoredNamespaces []string
	unwrapTags        map[string]struct{}
	voidTags          map[string]struct{}
	skippedTags       map[string]struct{}
}

// NewFilterRules builds FilterRules from spec. Headings are lower-cased
// and trimmed so they can be compared against normalized heading text.
func NewFilterRules(spec RuleSpec) *FilterRules {
	headings := make([]string, 0, len(spec.IgnoredHeadings))
	for _, h := range spec.IgnoredHeadings {
		headings = append(headings, NormalizeHeading(h))
	}
	return &FilterRules{
		ignoredTags:       toSet(spec.IgnoredTags),
		ignoredClasses:    slices.Clone(spec.IgnoredClasses),
		ignoredRoles:      toSet(spec.IgnoredRoles),
		ignoredHeadings:   toSet(headings),
		ignoredNamespaces: slices.Clone(spec.IgnoredNamespaces),
		unwrapTags:        toSet(spec.UnwrapTags),
		voidTags:          toSet(spec.VoidTags),
		skippedTags:       toSet(spec.SkippedTags),
	}
}

// DefaultRules returns FilterRules built from DefaultRuleSpec.
func DefaultRules() *FilterRules {
	return NewFilterRules(DefaultRuleSpec())
}

// IsIgnored reports whether an element and its whole subtree must be
// dropped. Class matching is by substring, so "ambox" also matches
// "ambox-content" and partial token overlaps.
func (r *FilterRules) IsIgnored(tag, class, role string) bool {
	if _, ok := r.ignoredTags[tag]; ok {
		return true
	}
	if _, ok := r.ignoredRoles[role]; ok {
		return true
	}
	for _, c := range r.ignoredClasses {
		if strings.Contains(class, c) {
			return true
		}
	}
	return false
}

// IsArticleLink reports whether href points at a mainspace article.
// Comparison is case-sensitive, as in MediaWiki.
func (r *FilterRules) IsArticleLink(href string) bool {
	if !strings.HasPrefix(href, InternalLinkPrefix) {
		return false
	}
	for _, ns := range r.ignoredNamespaces {
		if strings.Contains(href, ns) {
			return false
		}
	}
	return true
}

// IsIgnoredHeading reports whether heading text vetoes its top-level section.
func (r *FilterRules) IsIgnoredHeading(text string) bool {
	_, ok := r.ignoredHeadings[NormalizeHeading(text)]
	return ok
}

// IsUnwrapped reports whether tag keeps its children but loses its own markup.
func (r *FilterRules) IsUnwrapped(tag string) bool {
	_, ok := r.unwrapTags[tag]
	return ok
}

// IsVoid reports whether tag never produces an end event.
func (r *FilterRules) IsVoid(tag string) bool {
	_, ok := r.voidTags[tag]
	return ok
}

// IsSkipped reports whether tag is never emitted, even outside dropped subtrees.
func (r *FilterRules) IsSkipped(tag string) bool {
	_, ok := r.skippedTags[tag]
	return ok
}

// ArticleTitle strips the internal link prefix from href.
// The second result is false if href is not an internal link.
func ArticleTitle(href string) (string, bool) {
	return strings.CutPrefix(href, InternalLinkPrefix)
}

// NormalizeHeading lower-cases and trims heading text for comparison.
func NormalizeHeading(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, item := range items {
		m[item] = struct{}{}
	}
	return m
}
