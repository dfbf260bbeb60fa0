// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

// Dictionary assigns each distinct string a stable index in insertion
// order. Index 0 is always the empty string. A Dictionary belongs to a
// single encode call and is not safe for concurrent use.
type Dictionary struct {
	values []string
	index  map[string]int
}

// NewDictionary returns a dictionary seeded with "" at index 0.
func NewDictionary() *Dictionary {
	return &Dictionary{
		values: []string{""},
		index:  map[string]int{"": 0},
	}
}

// Index returns the index of value, appending it if it has not been seen.
func (d *Dictionary) Index(value string) int {
	if i, ok := d.index[value]; ok {
		return i
	}
	i := len(d.values)
	d.values = append(d.values, value)
	d.index[value] = i
	return i
}

// Values returns the dictionary table in index order.
func (d *Dictionary) Values() []string {
	return d.values
}

// Len returns the number of entries, including the empty string.
func (d *Dictionary) Len() int {
	return len(d.values)
}
