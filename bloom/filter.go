// Package bloom provides a compact, probabilistic set of article titles.
// The harvester uses it to rule out stored pages without touching disk.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over article titles. Test never reports a
// false negative; a positive must be confirmed against the real store.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected titles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewFilterWith creates a filter sized for and holding titles.
func NewFilterWith(titles []string, fpRate float64) *Filter {
	f := NewFilter(uint(len(titles)), fpRate)
	for _, title := range titles {
		f.Add(title)
	}
	return f
}

// Add adds a title to the filter.
func (f *Filter) Add(title string) {
	f.f.AddString(title)
}

// Test returns true if the title might be in the filter.
func (f *Filter) Test(title string) bool {
	return f.f.TestString(title)
}

// EstimatedCount returns the approximate number of titles in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
