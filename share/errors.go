// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayload is wrapped by every error returned from Decode.
	ErrInvalidPayload = errors.New("invalid share payload")

	ErrUnsupportedVersion       = errors.New("unsupported payload version")
	ErrMalformedPayload         = errors.New("malformed payload")
	ErrMalformedBase64          = errors.New("malformed base64url text")
	ErrDecompressionUnavailable = errors.New("raw deflate decompression unavailable")
	ErrPayloadTooLarge          = errors.New("decompressed payload too large")
)

// malformed returns an ErrMalformedPayload describing the offending part.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}

// ImportError reports an import that stopped partway through. Items
// created before the failure remain in the list.
type ImportError struct {
	ListID   string
	Imported int
	Err      error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import into list %s stopped after %d items: %v", e.ListID, e.Imported, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
