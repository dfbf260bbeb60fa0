// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package share turns a shopping list into a compact transport string for
QR codes and share links, and reads such strings back from untrusted input.

# Transport Formats

A transport string is exactly one of:

	B1:<base64url>                        deflated compact payload
	[1,"Weekly basket",["","Milk"],[...]] compact payload, plain JSON
	{"version":1,"listName":...}          full payload object

Encode always produces one of the first two: the compressed form when the
Compressor has DEFLATE available, the plain compact array otherwise.
Decode accepts all three. The compact array is accepted even from senders
that could have compressed it.

# Compact Payloads

Compaction interns every text field through a Dictionary whose index 0 is
the empty string. Each item becomes seven numbers:

	[nameIdx, quantity, unitIdx, categoryIdx, commentIdx, scopeIdx, purchased]

Dictionary indices are only meaningful within one encoding.

# Compression

Compression is raw DEFLATE with no zlib or gzip header. Whether it is
available is fixed when the Compressor is built:

	codec := share.NewCodec(share.NewCompressor(cfg.Compression))

Without DEFLATE, Encode silently emits plain JSON, while Decode of a B1:
string fails with ErrDecompressionUnavailable.

# Errors

Decode never returns a partial payload. Every error wraps ErrInvalidPayload:

	payload, err := codec.Decode(raw)
	if errors.Is(err, share.ErrInvalidPayload) {
		// reject
	}

# Import

Assembler.Apply creates items one at a time and does not roll back. On a
mid-sequence failure it returns an *ImportError with the number of items
already imported.
*/
package share
