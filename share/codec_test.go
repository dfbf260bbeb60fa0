// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		input    string
		expected Format
	}{
		{"B1:abc", FormatCompressed},
		{"B1:", FormatCompressed},
		{`[1,"L",[""],[]]`, FormatCompactArray},
		{" \n\t[1]", FormatCompactArray},
		{`{"version":1}`, FormatFullObject},
		{"b1:abc", FormatFullObject},
		{"", FormatFullObject},
		{"garbage", FormatFullObject},
	}

	for _, tc := range testCases {
		if got := Classify(tc.input); got != tc.expected {
			t.Errorf("Classify(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestCodecWeeklyBasket(t *testing.T) {
	for _, available := range []bool{true, false} {
		codec := NewCodec(NewCompressor(available))

		encoded, err := codec.Encode(weeklyBasket())
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		decoded, err := codec.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", encoded, err)
		}
		if decoded.ListName != "Weekly basket" {
			t.Errorf("Expected list name 'Weekly basket', got %q", decoded.ListName)
		}
		if len(decoded.Items) != 1 || decoded.Items[0].Name != "Milk" {
			t.Fatalf("Expected one item named Milk, got %+v", decoded.Items)
		}
		if !reflect.DeepEqual(*decoded, weeklyBasket()) {
			t.Errorf("Round trip mismatch: %+v", *decoded)
		}
	}
}

func TestCodecEncodeFormats(t *testing.T) {
	p := weeklyBasket()
	p.Items[0].Comment = "<fresh> & cold"

	compressed, err := NewCodec(NewCompressor(true)).Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(compressed, CompressedPrefix) {
		t.Errorf("Expected compressed output, got %q", compressed)
	}
	if strings.ContainsAny(compressed[len(CompressedPrefix):], "+/= ") {
		t.Errorf("Compressed output is not URL-safe: %q", compressed)
	}

	plain, err := NewCodec(NewCompressor(false)).Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expected := `[1,"Weekly basket",["","Milk","l","Dairy","<fresh> & cold","Breakfast"],[[1,2,2,3,4,5,0]]]`
	if plain != expected {
		t.Errorf("Expected %s, got %s", expected, plain)
	}
}

func TestCodecEncodeDeterministic(t *testing.T) {
	codec := NewCodec(NewCompressor(true))

	first, err := codec.Encode(weeklyBasket())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := codec.Encode(weeklyBasket())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical output for identical input")
	}
}

func TestCodecFormatDiscrimination(t *testing.T) {
	codec := NewCodec(NewCompressor(true))

	compact := `[1,"Weekly basket",["","Milk","l","Dairy","Breakfast"],[[1,2,2,3,0,4,0]]]`
	object := `{"version":1,"listName":"Weekly basket","items":[` +
		`{"name":"Milk","quantity":2,"unit":"l","category":"Dairy","comment":"","scope":"Breakfast","purchased":false}]}`

	fromCompact, err := codec.Decode(compact)
	if err != nil {
		t.Fatalf("Decode compact failed: %v", err)
	}
	fromObject, err := codec.Decode(object)
	if err != nil {
		t.Fatalf("Decode object failed: %v", err)
	}
	if !reflect.DeepEqual(fromCompact, fromObject) {
		t.Errorf("Compact and object forms differ:\ncompact %+v\nobject  %+v", fromCompact, fromObject)
	}
}

func TestCodecDecodeInvalid(t *testing.T) {
	codec := NewCodec(NewCompressor(true))

	testCases := []struct {
		name  string
		input string
		cause error
	}{
		{"empty", "", nil},
		{"not json", "hello, world", nil},
		{"json null", "null", ErrMalformedPayload},
		{"json number", "42", ErrMalformedPayload},
		{"object version 2", `{"version":2}`, ErrUnsupportedVersion},
		{"object without version", `{"listName":"L","items":[]}`, ErrUnsupportedVersion},
		{"object missing items", `{"version":1,"listName":"L"}`, ErrMalformedPayload},
		{"object items null", `{"version":1,"listName":"L","items":null}`, ErrMalformedPayload},
		{"object item missing field", `{"version":1,"listName":"L","items":[{"name":"Milk"}]}`, ErrMalformedPayload},
		{"object item wrong type", `{"version":1,"listName":"L","items":[` +
			`{"name":"Milk","quantity":"2","unit":"l","category":"Dairy","comment":"","scope":"","purchased":false}]}`, ErrMalformedPayload},
		{"object purchased number", `{"version":1,"listName":"L","items":[` +
			`{"name":"Milk","quantity":2,"unit":"l","category":"Dairy","comment":"","scope":"","purchased":0}]}`, ErrMalformedPayload},
		{"compact version 2", `[2,"L",[""],[]]`, ErrUnsupportedVersion},
		{"compact truncated", `[1,"L",[""],[[1,2`, nil},
		{"compressed empty", "B1:", nil},
		{"compressed bad alphabet", "B1:abc+def", ErrMalformedBase64},
		{"compressed padded", "B1:QQ==", ErrMalformedBase64},
		{"compressed truncated base64", "B1:QUJDR", ErrMalformedBase64},
		{"compressed not deflate", "B1:" + EncodeBase64URL([]byte("not deflate at all")), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := codec.Decode(tc.input)
			if p != nil {
				t.Errorf("Expected nil payload, got %+v", p)
			}
			if !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("Expected ErrInvalidPayload, got %v", err)
			}
			if tc.cause != nil && !errors.Is(err, tc.cause) {
				t.Errorf("Expected cause %v, got %v", tc.cause, err)
			}
		})
	}
}

func TestCodecDecodeTruncatedCompressed(t *testing.T) {
	codec := NewCodec(NewCompressor(true))

	encoded, err := codec.Encode(weeklyBasket())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	truncated := encoded[:len(CompressedPrefix)+(len(encoded)-len(CompressedPrefix))/2]
	if p, err := codec.Decode(truncated); err == nil {
		t.Errorf("Expected error for truncated payload, got %+v", p)
	}
}

func TestCodecDecodeWithoutDecompression(t *testing.T) {
	encoded, err := NewCodec(NewCompressor(true)).Encode(weeklyBasket())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	limited := NewCodec(NewCompressor(false))

	p, err := limited.Decode(encoded)
	if p != nil || !errors.Is(err, ErrDecompressionUnavailable) {
		t.Errorf("Expected ErrDecompressionUnavailable, got %v (payload %+v)", err, p)
	}
	if !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("Expected error to wrap ErrInvalidPayload, got %v", err)
	}

	// uncompressed forms still decode
	plain, err := limited.Encode(weeklyBasket())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := limited.Decode(plain); err != nil {
		t.Errorf("Expected plain compact payload to decode, got %v", err)
	}
}

func TestCodecDecodeOversized(t *testing.T) {
	c := NewCompressor(true)
	data := `[1,"` + strings.Repeat("x", MaxDecompressedSize) + `",[""],[]]`

	packed, _, err := c.Compress([]byte(data))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	_, err = NewCodec(c).Decode(CompressedPrefix + EncodeBase64URL(packed))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestCodecEncodeRejectsNonFiniteQuantity(t *testing.T) {
	codec := NewCodec(NewCompressor(true))

	for _, q := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := weeklyBasket()
		p.Items[0].Quantity = q
		if _, err := codec.Encode(p); err == nil {
			t.Errorf("Expected error encoding quantity %v", q)
		}
	}
}
