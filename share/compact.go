// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"bytes"
	"encoding/json"
	"math"
)

// Positions within a CompactItem. The order is part of the wire format.
const (
	fieldName = iota
	fieldQuantity
	fieldUnit
	fieldCategory
	fieldComment
	fieldScope
	fieldPurchased
	compactItemLen
)

// CompactItem is the 7-number tuple
// (nameIdx, quantity, unitIdx, categoryIdx, commentIdx, scopeIdx, purchased).
// Indices are kept as float64 because decoded input is not trusted to
// hold integers.
type CompactItem [compactItemLen]float64

// CompactPayload is the dictionary-indexed form of a SharePayload. On the
// wire it is the JSON array [version, listName, dictionary, items].
type CompactPayload struct {
	Version    int
	ListName   string
	Dictionary []string
	Items      []CompactItem
}

// Compact builds the compact form of p. Strings are interned in field
// order name, unit, category, comment, scope for each item in turn.
func Compact(p SharePayload) CompactPayload {
	dict := NewDictionary()
	items := make([]CompactItem, 0, len(p.Items))
	for _, item := range p.Items {
		var c CompactItem
		c[fieldName] = float64(dict.Index(item.Name))
		c[fieldQuantity] = item.Quantity
		c[fieldUnit] = float64(dict.Index(item.Unit))
		c[fieldCategory] = float64(dict.Index(item.Category))
		c[fieldComment] = float64(dict.Index(item.Comment))
		c[fieldScope] = float64(dict.Index(item.Scope))
		if item.Purchased {
			c[fieldPurchased] = 1
		}
		items = append(items, c)
	}

	return CompactPayload{
		Version:    Version,
		ListName:   p.ListName,
		Dictionary: dict.Values(),
		Items:      items,
	}
}

// Expand resolves a compact payload back into a SharePayload. Indices that
// are out of range or not whole numbers resolve to "", and empty name,
// unit and category fall back to their defaults.
func Expand(c CompactPayload) (*SharePayload, error) {
	if c.Version != Version {
		return nil, ErrUnsupportedVersion
	}

	lookup := func(idx float64) string {
		if idx != math.Trunc(idx) || idx < 0 || idx >= float64(len(c.Dictionary)) {
			return ""
		}
		return c.Dictionary[int(idx)]
	}
	orDefault := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	items := make([]ShareItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ShareItem{
			Name:      orDefault(lookup(item[fieldName]), DefaultItemName),
			Quantity:  item[fieldQuantity],
			Unit:      orDefault(lookup(item[fieldUnit]), DefaultUnit),
			Category:  orDefault(lookup(item[fieldCategory]), DefaultCategory),
			Comment:   lookup(item[fieldComment]),
			Scope:     lookup(item[fieldScope]),
			Purchased: item[fieldPurchased] == 1,
		})
	}

	return &SharePayload{
		Version:  Version,
		ListName: c.ListName,
		Items:    items,
	}, nil
}

// MarshalJSON writes the payload as a 4-element JSON array.
func (c CompactPayload) MarshalJSON() ([]byte, error) {
	dict := c.Dictionary
	if dict == nil {
		dict = []string{""}
	}
	items := c.Items
	if items == nil {
		items = []CompactItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]any{c.Version, c.ListName, dict, items}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON checks the shape of untrusted input before accepting it:
// a version of 1, a string list name, a dictionary of strings, and items
// of exactly seven numbers each. Index ranges are not checked here.
func (c *CompactPayload) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := compactFromValue(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func compactFromValue(v any) (CompactPayload, error) {
	tuple, ok := v.([]any)
	if !ok {
		return CompactPayload{}, malformed("compact payload is not an array")
	}
	if len(tuple) < 4 {
		return CompactPayload{}, malformed("compact payload has %d elements, want 4", len(tuple))
	}

	version, ok := tuple[0].(float64)
	if !ok || version != Version {
		return CompactPayload{}, ErrUnsupportedVersion
	}
	listName, ok := tuple[1].(string)
	if !ok {
		return CompactPayload{}, malformed("list name is not a string")
	}
	rawDict, ok := tuple[2].([]any)
	if !ok {
		return CompactPayload{}, malformed("dictionary is not an array")
	}
	rawItems, ok := tuple[3].([]any)
	if !ok {
		return CompactPayload{}, malformed("items is not an array")
	}

	dict := make([]string, len(rawDict))
	for i, entry := range rawDict {
		s, ok := entry.(string)
		if !ok {
			return CompactPayload{}, malformed("dictionary entry %d is not a string", i)
		}
		dict[i] = s
	}

	items := make([]CompactItem, len(rawItems))
	for i, raw := range rawItems {
		fields, ok := raw.([]any)
		if !ok || len(fields) != compactItemLen {
			return CompactPayload{}, malformed("item %d is not a %d-element array", i, compactItemLen)
		}
		for j, field := range fields {
			n, ok := field.(float64)
			if !ok {
				return CompactPayload{}, malformed("item %d field %d is not a number", i, j)
			}
			items[i][j] = n
		}
	}

	return CompactPayload{
		Version:    Version,
		ListName:   listName,
		Dictionary: dict,
		Items:      items,
	}, nil
}
