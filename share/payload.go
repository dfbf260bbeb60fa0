// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

// Version is the only payload version this package reads or writes.
const Version = 1

// Defaults applied when a compact field resolves to the empty string.
const (
	DefaultItemName = "Item"
	DefaultUnit     = "pcs"
	DefaultCategory = "Other"
)

// ShareItem is one line of a shared list. Text fields are free-form and
// are not checked against the catalog.
type ShareItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
	Comment   string  `json:"comment"`
	Scope     string  `json:"scope"`
	Purchased bool    `json:"purchased"`
}

// SharePayload is the full, human-readable form of a shared list.
type SharePayload struct {
	Version  int         `json:"version"`
	ListName string      `json:"listName"`
	Items    []ShareItem `json:"items"`
}
