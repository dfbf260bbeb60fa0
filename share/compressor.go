// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// MaxDecompressedSize caps the output of Decompress. Transport strings
// come from untrusted scans, so a small input must not expand unbounded.
const MaxDecompressedSize = 1 << 20

// CompressResult reports whether Compress actually transformed its input.
type CompressResult int

const (
	Unchanged CompressResult = iota
	Compressed
)

func (r CompressResult) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Compressed:
		return "compressed"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Compressor applies raw DEFLATE (no zlib or gzip framing). Whether the
// codec is available is decided once at construction; a disabled
// Compressor behaves like a platform without DEFLATE support.
type Compressor struct {
	available bool
	level     int
	maxOutput int64
}

// NewCompressor returns a Compressor. When available is false, Compress
// passes data through and Decompress fails with
// ErrDecompressionUnavailable.
func NewCompressor(available bool) *Compressor {
	return &Compressor{
		available: available,
		level:     flate.BestCompression,
		maxOutput: MaxDecompressedSize,
	}
}

// Available reports whether raw DEFLATE is enabled.
func (c *Compressor) Available() bool {
	return c.available
}

// Compress deflates data. Without DEFLATE support it returns data itself
// and Unchanged.
func (c *Compressor) Compress(data []byte) ([]byte, CompressResult, error) {
	if !c.available {
		return data, Unchanged, nil
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, c.level)
	if err != nil {
		return nil, Unchanged, fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, Unchanged, fmt.Errorf("failed to deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, Unchanged, fmt.Errorf("failed to flush deflate stream: %w", err)
	}
	return buf.Bytes(), Compressed, nil
}

// Decompress inflates a raw DEFLATE stream. Unlike Compress it has no
// fallback: without DEFLATE support the bytes cannot be interpreted.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	if !c.available {
		return nil, ErrDecompressionUnavailable
	}

	zr := flate.NewReader(bytes.NewReader(data))
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, c.maxOutput+1))
	if err != nil {
		return nil, fmt.Errorf("failed to inflate: %w", err)
	}
	if int64(len(out)) > c.maxOutput {
		return nil, ErrPayloadTooLarge
	}
	return out, nil
}
