// Package html adapts golang.org/x/net/html's tokenizer to the
// offwiki.Event stream consumed by the clean package.
package html

import (
	"errors"
	"io"

	"github.com/fwojciec/offwiki"
	"golang.org/x/net/html"
)

// Ensure Tokenizer implements offwiki.EventSource at compile time.
var _ offwiki.EventSource = (*Tokenizer)(nil)

// Tokenizer turns an HTML byte stream into offwiki events.
// Comments and doctypes are dropped. Void elements never produce an end
// event; a self-closing non-void element produces a start and an end.
type Tokenizer struct {
	z       *html.Tokenizer
	rules   *offwiki.FilterRules
	pending []offwiki.Event
}

// NewTokenizer returns a Tokenizer reading from r. rules decides which
// elements are void.
func NewTokenizer(r io.Reader, rules *offwiki.FilterRules) *Tokenizer {
	return &Tokenizer{
		z:     html.NewTokenizer(r),
		rules: rules,
	}
}

// Next returns the next event, io.EOF at the end of the stream, or an
// EPARSE error if the stream could not be read.
func (t *Tokenizer) Next() (offwiki.Event, error) {
	if len(t.pending) > 0 {
		ev := t.pending[0]
		t.pending = t.pending[1:]
		return ev, nil
	}

	for {
		switch t.z.Next() {
		case html.ErrorToken:
			err := t.z.Err()
			if errors.Is(err, io.EOF) {
				return offwiki.Event{}, io.EOF
			}
			return offwiki.Event{}, offwiki.Errorf(offwiki.EPARSE, "tokenize: %v", err)

		case html.TextToken:
			return offwiki.Text(string(t.z.Raw())), nil

		case html.StartTagToken:
			return t.startTag(), nil

		case html.SelfClosingTagToken:
			ev := t.startTag()
			if !t.rules.IsVoid(ev.Name) {
				t.pending = append(t.pending, offwiki.EndTag(ev.Name))
			}
			return ev, nil

		case html.EndTagToken:
			name, _ := t.z.TagName()
			if t.rules.IsVoid(string(name)) {
				continue
			}
			return offwiki.EndTag(string(name)), nil
		}
		// Comments and doctypes carry nothing the transducer keeps.
	}
}

func (t *Tokenizer) startTag() offwiki.Event {
	name, hasAttr := t.z.TagName()
	ev := offwiki.StartTag(string(name))
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = t.z.TagAttr()
		ev.Attrs = append(ev.Attrs, offwiki.Attr{Key: string(key), Val: string(val)})
	}
	return ev
}
