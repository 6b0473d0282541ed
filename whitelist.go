package offwiki

import (
	"maps"
	"slices"
)

// Whitelist is the set of article titles whose links stay clickable.
// Titles carry no internal link prefix. A Whitelist must not be modified
// once transduction has started; concurrent reads are safe.
type Whitelist struct {
	titles map[string]struct{}
}

// NewWhitelist returns a Whitelist holding titles.
func NewWhitelist(titles ...string) *Whitelist {
	w := &Whitelist{titles: make(map[string]struct{}, len(titles))}
	for _, t := range titles {
		w.Add(t)
	}
	return w
}

// Add inserts title into the set.
func (w *Whitelist) Add(title string) {
	w.titles[title] = struct{}{}
}

// Contains reports whether title is in the set. A nil Whitelist is empty.
func (w *Whitelist) Contains(title string) bool {
	if w == nil {
		return false
	}
	_, ok := w.titles[title]
	return ok
}

// Len returns the number of titles.
func (w *Whitelist) Len() int {
	if w == nil {
		return 0
	}
	return len(w.titles)
}

// Union adds every title of other to w.
func (w *Whitelist) Union(other *Whitelist) {
	if other == nil {
		return
	}
	for t := range other.titles {
		w.Add(t)
	}
}

// Titles returns the titles in sorted order.
func (w *Whitelist) Titles() []string {
	if w == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(w.titles))
}
