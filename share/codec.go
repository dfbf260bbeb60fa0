// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CompressedPrefix marks a deflated, base64url-encoded compact payload.
const CompressedPrefix = "B1:"

// Format is the wire shape of a transport string.
type Format int

const (
	// FormatFullObject is a JSON SharePayload object. Anything that is
	// neither compressed nor an array is classified here and left to
	// fail validation.
	FormatFullObject Format = iota
	// FormatCompactArray is a JSON CompactPayload array.
	FormatCompactArray
	// FormatCompressed is CompressedPrefix followed by base64url of a
	// deflated CompactPayload.
	FormatCompressed
)

func (f Format) String() string {
	switch f {
	case FormatFullObject:
		return "object"
	case FormatCompactArray:
		return "compact"
	case FormatCompressed:
		return "compressed"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Classify decides the format of raw from its shape alone. The prefix is
// checked first; a compact array is told apart from an object by its
// first non-whitespace character.
func Classify(raw string) Format {
	if strings.HasPrefix(raw, CompressedPrefix) {
		return FormatCompressed
	}
	if strings.HasPrefix(strings.TrimLeft(raw, " \t\r\n"), "[") {
		return FormatCompactArray
	}
	return FormatFullObject
}

// Codec converts share payloads to and from transport strings. A Codec
// holds no per-call state and may be shared between goroutines.
type Codec struct {
	compressor *Compressor
}

func NewCodec(compressor *Compressor) *Codec {
	return &Codec{compressor: compressor}
}

// Encode returns the transport string for p: the compressed form when
// DEFLATE is available, otherwise the plain compact JSON array.
func (c *Codec) Encode(p SharePayload) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Compact(p)); err != nil {
		return "", fmt.Errorf("failed to marshal compact payload: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	packed, result, err := c.compressor.Compress(data)
	if err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}
	if result == Unchanged {
		return string(data), nil
	}
	return CompressedPrefix + EncodeBase64URL(packed), nil
}

// Decode parses a transport string of unknown origin. Every failure,
// including a compressed payload on a Codec without DEFLATE support,
// returns an error wrapping ErrInvalidPayload and a nil payload.
func (c *Codec) Decode(raw string) (*SharePayload, error) {
	p, err := c.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return p, nil
}

func (c *Codec) decode(raw string) (*SharePayload, error) {
	switch Classify(raw) {
	case FormatCompressed:
		packed, err := DecodeBase64URL(raw[len(CompressedPrefix):])
		if err != nil {
			return nil, err
		}
		data, err := c.compressor.Decompress(packed)
		if err != nil {
			return nil, err
		}
		return decodeCompact(data)

	case FormatCompactArray:
		return decodeCompact([]byte(raw))

	default:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		return payloadFromValue(v)
	}
}

func decodeCompact(data []byte) (*SharePayload, error) {
	var compact CompactPayload
	if err := json.Unmarshal(data, &compact); err != nil {
		return nil, err
	}
	return Expand(compact)
}

// payloadFromValue validates a decoded JSON object field by field. No
// defaults are applied: every field must be present with its exact type.
func payloadFromValue(v any) (*SharePayload, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, malformed("payload is not an object")
	}
	if version, ok := obj["version"].(float64); !ok || version != Version {
		return nil, ErrUnsupportedVersion
	}
	listName, ok := obj["listName"].(string)
	if !ok {
		return nil, malformed("listName is not a string")
	}
	rawItems, ok := obj["items"].([]any)
	if !ok {
		return nil, malformed("items is not an array")
	}

	items := make([]ShareItem, 0, len(rawItems))
	for i, raw := range rawItems {
		item, err := itemFromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	return &SharePayload{
		Version:  Version,
		ListName: listName,
		Items:    items,
	}, nil
}

func itemFromValue(v any) (ShareItem, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return ShareItem{}, malformed("item is not an object")
	}

	var item ShareItem
	text := []struct {
		key string
		dst *string
	}{
		{"name", &item.Name},
		{"unit", &item.Unit},
		{"category", &item.Category},
		{"comment", &item.Comment},
		{"scope", &item.Scope},
	}
	for _, f := range text {
		s, ok := obj[f.key].(string)
		if !ok {
			return ShareItem{}, malformed("%s is not a string", f.key)
		}
		*f.dst = s
	}

	quantity, ok := obj["quantity"].(float64)
	if !ok {
		return ShareItem{}, malformed("quantity is not a number")
	}
	purchased, ok := obj["purchased"].(bool)
	if !ok {
		return ShareItem{}, malformed("purchased is not a boolean")
	}
	item.Quantity = quantity
	item.Purchased = purchased
	return item, nil
}
