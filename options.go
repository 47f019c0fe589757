// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

// DecodeOptions configures the buffer- and reader-level Decode convenience
// wrappers around Decoder. OutLen is required: the core Decoder's Next is
// byte-pull and has no notion of "done" other than the caller's own count
// (see Decoder.Next), so Decode needs the original length out-of-band to
// know when to stop pulling.
type DecodeOptions struct {
	// OutLen is the original uncompressed length.
	OutLen int
	// MaxInputSize limits how many bytes DecodeFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecodeOptions returns options with the given output length and no input limit.
func DefaultDecodeOptions(outLen int) *DecodeOptions {
	return &DecodeOptions{OutLen: outLen}
}
