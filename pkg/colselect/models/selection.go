package models

import "sort"

// Selection is a set of column names. Matching is exact string equality.
type Selection map[string]struct{}

// NewSelection builds a selection from names.
func NewSelection(names ...string) Selection {
	s := make(Selection, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is selected.
func (s Selection) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Merge adds every name of other to s.
func (s Selection) Merge(other Selection) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Len returns the number of selected names.
func (s Selection) Len() int {
	return len(s)
}

// Names returns the selected names sorted.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
