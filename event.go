package offwiki

// EventType identifies the kind of a tokenizer event.
type EventType int

// Event types produced by an EventSource.
const (
	StartTagEvent EventType = iota + 1
	EndTagEvent
	TextEvent
)

// Attr is a single tag attribute with an unescaped value.
type Attr struct {
	Key string
	Val string
}

// Event is one unit of a tokenized HTML document.
// Name is set for tag events, Attrs only for start tags and Data only for text.
// Data is the raw source text, entities still escaped.
type Event struct {
	Type  EventType
	Name  string
	Attrs []Attr
	Data  string
}

// Attr returns the value of the first attribute named key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// StartTag returns a start tag event.
func StartTag(name string, attrs ...Attr) Event {
	return Event{Type: StartTagEvent, Name: name, Attrs: attrs}
}

// EndTag returns an end tag event.
func EndTag(name string) Event {
	return Event{Type: EndTagEvent, Name: name}
}

// Text returns a text event.
func Text(data string) Event {
	return Event{Type: TextEvent, Data: data}
}

// EventSource yields the events of one document in order.
// Nesting is well formed except that void elements never produce an
// end event. Next returns io.EOF once the document is exhausted; any
// other error means the underlying byte stream was malformed.
type EventSource interface {
	Next() (Event, error)
}
