// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "errors"

// Sentinel errors for configuration, encoding, and decoding.
var (
	// ErrWindowOutOfRange is returned when window_sz2 is outside [1,16].
	ErrWindowOutOfRange = errors.New("window_sz2 out of range [1,16]")
	// ErrLookaheadOutOfRange is returned when lookahead_sz2 is outside [1,16].
	ErrLookaheadOutOfRange = errors.New("lookahead_sz2 out of range [1,16]")
	// ErrConfigInvalid is returned by Encode/Decode when cfg fails validation
	// (belt-and-suspenders: Config's own constructors already reject this).
	ErrConfigInvalid = errors.New("config invalid")

	// ErrOutputBufferTooSmall is returned when dst cannot hold the encoded output.
	ErrOutputBufferTooSmall = errors.New("output buffer too small")

	// ErrIllegalBackref is returned when a back-reference addresses bytes
	// before the start of the emitted output.
	ErrIllegalBackref = errors.New("illegal back-reference")
	// ErrTruncatedStream is returned when input ends inside a record's
	// multi-bit field. End-of-input on a tag-bit boundary is not an error.
	ErrTruncatedStream = errors.New("truncated stream")
	// ErrOptionsRequired is returned when a buffer-level decode call is made
	// with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecodeFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
