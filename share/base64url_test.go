// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 255, base64Chunk - 1, base64Chunk, base64Chunk + 1, 2*base64Chunk + 2}

	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 7)
		}

		encoded := EncodeBase64URL(data)
		if expected := base64.RawURLEncoding.EncodeToString(data); encoded != expected {
			t.Errorf("size %d: chunked encoding differs from single-pass encoding", size)
		}
		if strings.ContainsAny(encoded, "+/=") {
			t.Errorf("size %d: encoded text contains non URL-safe characters", size)
		}

		decoded, err := DecodeBase64URL(encoded)
		if err != nil {
			t.Fatalf("size %d: decode failed: %v", size, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("size %d: round trip mismatch", size)
		}
	}
}

func TestDecodeBase64URLInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"padding", "QQ=="},
		{"standard alphabet plus", "a+b/"},
		{"whitespace", "QUJD\nREVG"},
		{"dangling character", "QUJDR"},
		{"non-ascii", "QUJDé"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeBase64URL(tc.input)
			if !errors.Is(err, ErrMalformedBase64) {
				t.Errorf("Expected ErrMalformedBase64, got %v", err)
			}
		})
	}
}
