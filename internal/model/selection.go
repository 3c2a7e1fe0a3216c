package model

import "sort"

// SelectedUnit is the user's target unit for one dimension.
type SelectedUnit struct {
	Dimension BaseDimension `json:"dimension" yaml:"dimension"`
	Unit      string        `json:"unit" yaml:"unit"`
	Exponent  float64       `json:"exponent" yaml:"exponent"`
}

// Selection maps each dimension to at most one SelectedUnit.
type Selection map[BaseDimension]SelectedUnit

// NewSelection builds a Selection; later entries for the same dimension win.
func NewSelection(units ...SelectedUnit) Selection {
	s := make(Selection, len(units))
	for _, u := range units {
		s.Set(u)
	}
	return s
}

// Set stores u, replacing any prior entry for its dimension.
func (s Selection) Set(u SelectedUnit) {
	s[u.Dimension] = u
}

// Get returns the entry for dim.
func (s Selection) Get(dim BaseDimension) (SelectedUnit, bool) {
	u, ok := s[dim]
	return u, ok
}

// Len returns the number of selected dimensions.
func (s Selection) Len() int {
	return len(s)
}

// Keys returns the selected dimensions in key order.
func (s Selection) Keys() []BaseDimension {
	keys := make([]BaseDimension, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Entries returns the selected units sorted by dimension key.
func (s Selection) Entries() []SelectedUnit {
	keys := s.Keys()
	out := make([]SelectedUnit, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}

// Restrict returns a new Selection holding only the given dimensions.
func (s Selection) Restrict(dims []BaseDimension) Selection {
	out := make(Selection, len(dims))
	for _, d := range dims {
		if u, ok := s[d]; ok {
			out[d] = u
		}
	}
	return out
}

// Clone returns a copy of s.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
