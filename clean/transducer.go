// Package clean implements the streaming rewrite of Wikipedia article
// HTML. It consumes offwiki.Event streams only; tokenizing raw markup is
// the job of the html package.
package clean

import (
	"errors"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/fwojciec/offwiki"
)

// Doctype starts every transduced document.
const Doctype = "<!DOCTYPE html>"

// LinkSuffix is appended to whitelisted link targets.
const LinkSuffix = ".html"

// DefaultHead is appended right after the document's <head> open tag.
const DefaultHead = `<meta charset="utf-8">` +
	`<style>body{max-width:800px;margin:0 auto;padding:0 1em;}</style>` +
	`<meta name="viewport" content="width=device-width, initial-scale=1">`

// interTagSpace matches any Unicode whitespace between tags. RE2's \s
// is ASCII only.
var interTagSpace = regexp.MustCompile(`>[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+<`)

// suppressionStack holds the close markers ("/name") still owed by a
// dropped subtree. Non-empty means nothing is emitted.
type suppressionStack []string

func (s *suppressionStack) push(name string) { *s = append(*s, "/"+name) }

func (s suppressionStack) active() bool { return len(s) > 0 }

// popIf pops the top frame if it is the close marker for name.
func (s *suppressionStack) popIf(name string) bool {
	n := len(*s)
	if n == 0 || (*s)[n-1] != "/"+name {
		return false
	}
	*s = (*s)[:n-1]
	return true
}

// unwrapStack holds the names of open elements whose own markup was dropped.
type unwrapStack []string

func (s *unwrapStack) push(name string) { *s = append(*s, name) }

// popIf pops the top frame if it is name.
func (s *unwrapStack) popIf(name string) bool {
	n := len(*s)
	if n == 0 || (*s)[n-1] != name {
		return false
	}
	*s = (*s)[:n-1]
	return true
}

// sectionBuffers holds the output. Index 0 collects everything outside
// top-level sections and is never discarded; each later entry is one
// top-level section that can still be dropped when it closes.
type sectionBuffers []*strings.Builder

func (s *sectionBuffers) open() { *s = append(*s, &strings.Builder{}) }

func (s sectionBuffers) top() *strings.Builder { return s[len(s)-1] }

func (s *sectionBuffers) discardTop() {
	if len(*s) > 1 {
		*s = (*s)[:len(*s)-1]
	}
}

// Transducer rewrites one document. Create one per document with
// NewTransducer; it must not be reused or shared between goroutines.
type Transducer struct {
	rules     *offwiki.FilterRules
	whitelist *offwiki.Whitelist
	head      string

	output      sectionBuffers
	suppression suppressionStack
	unwrap      unwrapStack

	sectionDepth       int
	currentSectionKeep bool
	inHeadingContext   bool
}

// NewTransducer returns a Transducer for one document. head is inserted
// after the <head> open tag.
func NewTransducer(rules *offwiki.FilterRules, whitelist *offwiki.Whitelist, head string) *Transducer {
	t := &Transducer{
		rules:              rules,
		whitelist:          whitelist,
		head:               head,
		currentSectionKeep: true,
	}
	t.output.open()
	t.output.top().WriteString(Doctype)
	return t
}

// Handle consumes one event.
func (t *Transducer) Handle(ev offwiki.Event) {
	switch ev.Type {
	case offwiki.StartTagEvent:
		t.startTag(ev)
	case offwiki.EndTagEvent:
		t.endTag(ev.Name)
	case offwiki.TextEvent:
		t.text(ev.Data)
	}
}

func (t *Transducer) startTag(ev offwiki.Event) {
	name := ev.Name
	href := t.rewriteHref(ev)

	t.inHeadingContext = name == "h1" || name == "h2" || name == "h3"

	if name == "section" {
		t.sectionDepth++
		if t.sectionDepth == 1 {
			t.output.open()
			t.currentSectionKeep = true
		}
	}

	class, _ := ev.Attr("class")
	role, _ := ev.Attr("role")
	if t.suppression.active() || t.rules.IsIgnored(name, class, role) {
		// Frames hold close markers, so an open tag never matches the top
		// frame. Void elements never close and owe nothing.
		if !t.rules.IsVoid(name) {
			t.suppression.push(name)
		}
		return
	}

	if t.rules.IsUnwrapped(name) || (name == "a" && href == "") {
		t.unwrap.push(name)
		return
	}
	if t.rules.IsSkipped(name) {
		return
	}

	buf := t.output.top()
	buf.WriteByte('<')
	buf.WriteString(name)
	if class != "" {
		writeAttr(buf, "class", class)
	}
	if href != "" {
		writeAttr(buf, "href", href)
	}
	buf.WriteByte('>')
	if name == "head" {
		buf.WriteString(t.head)
	}
}

func (t *Transducer) endTag(name string) {
	switch {
	case t.suppression.active():
		// A close that does not match the top frame is ignored.
		t.suppression.popIf(name)
	case t.unwrap.popIf(name):
	default:
		buf := t.output.top()
		buf.WriteString("</")
		buf.WriteString(name)
		buf.WriteByte('>')
	}

	if name == "section" && t.sectionDepth > 0 {
		t.sectionDepth--
		if t.sectionDepth == 0 && !t.currentSectionKeep {
			t.output.discardTop()
		}
	}
}

func (t *Transducer) text(data string) {
	if t.inHeadingContext && t.sectionDepth > 0 && t.rules.IsIgnoredHeading(data) {
		t.currentSectionKeep = false
	}
	if t.suppression.active() {
		return
	}
	t.output.top().WriteString(strings.ReplaceAll(data, "\n", ""))
}

// rewriteHref returns the href to emit for a start tag, or "" when the
// target is not a whitelisted article.
func (t *Transducer) rewriteHref(ev offwiki.Event) string {
	href, ok := ev.Attr("href")
	if !ok {
		return ""
	}
	title, ok := offwiki.ArticleTitle(href)
	if !ok || title == "" || !t.whitelist.Contains(title) {
		return ""
	}
	return title + LinkSuffix
}

// String joins the surviving buffers and removes whitespace between tags.
func (t *Transducer) String() string {
	var b strings.Builder
	for _, buf := range t.output {
		b.WriteString(buf.String())
	}
	return interTagSpace.ReplaceAllString(b.String(), "><")
}

// Transduce drains src through a new Transducer and returns the document.
// Errors other than io.EOF come from the tokenizer and are returned as is.
func Transduce(src offwiki.EventSource, rules *offwiki.FilterRules, whitelist *offwiki.Whitelist, head string) (string, error) {
	t := NewTransducer(rules, whitelist, head)
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return t.String(), nil
		} else if err != nil {
			return "", err
		}
		t.Handle(ev)
	}
}

func writeAttr(b *strings.Builder, key, val string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(val))
	b.WriteByte('"')
}
