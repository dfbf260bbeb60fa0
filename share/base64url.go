// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// base64Chunk is a multiple of 3 so no chunk but the last produces a
// partial quantum.
const base64Chunk = 3 * 0x2000

// EncodeBase64URL encodes data with the RFC 4648 URL-safe alphabet and no
// padding. Input is processed in bounded chunks.
func EncodeBase64URL(data []byte) string {
	enc := base64.RawURLEncoding

	var b strings.Builder
	b.Grow(enc.EncodedLen(len(data)))
	buf := make([]byte, enc.EncodedLen(min(len(data), base64Chunk)))
	for start := 0; start < len(data); start += base64Chunk {
		end := min(start+base64Chunk, len(data))
		n := enc.EncodedLen(end - start)
		enc.Encode(buf[:n], data[start:end])
		b.Write(buf[:n])
	}
	return b.String()
}

// DecodeBase64URL reverses EncodeBase64URL. Any character outside
// [A-Za-z0-9_-] is rejected, including '=' and line breaks.
func DecodeBase64URL(s string) ([]byte, error) {
	if i := strings.IndexFunc(s, func(r rune) bool { return !isURLSafe(r) }); i >= 0 {
		return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedBase64, s[i], i)
	}
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBase64, err)
	}
	return data, nil
}

func isURLSafe(r rune) bool {
	return r >= 'A' && r <= 'Z' ||
		r >= 'a' && r <= 'z' ||
		r >= '0' && r <= '9' ||
		r == '-' || r == '_'
}
