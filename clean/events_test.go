package clean_test

import (
	"io"

	"github.com/fwojciec/offwiki"
)

// sliceSource replays a fixed event list and then fails with err, or
// io.EOF when err is nil.
type sliceSource struct {
	events []offwiki.Event
	err    error
}

func events(evs ...offwiki.Event) *sliceSource {
	return &sliceSource{events: evs}
}

func (s *sliceSource) Next() (offwiki.Event, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return offwiki.Event{}, s.err
		}
		return offwiki.Event{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func href(v string) offwiki.Attr { return offwiki.Attr{Key: "href", Val: v} }

func class(v string) offwiki.Attr { return offwiki.Attr{Key: "class", Val: v} }

func role(v string) offwiki.Attr { return offwiki.Attr{Key: "role", Val: v} }

var (
	start = offwiki.StartTag
	end   = offwiki.EndTag
	text  = offwiki.Text
)
