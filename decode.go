// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "io"

// Decode drains a Decoder for exactly opts.OutLen bytes and returns them.
// It is a convenience wrapper: all decoding logic lives in Decoder.Next.
func Decode(src []byte, cfg Config, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dec := NewDecoder(src, cfg)
	out := make([]byte, 0, opts.OutLen)
	for len(out) < opts.OutLen {
		b, err := dec.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// DecodeFromReader reads the full stream then calls Decode. No decoding
// logic of its own. If opts.MaxInputSize > 0 and more bytes are read,
// returns ErrInputTooLarge.
func DecodeFromReader(r io.Reader, cfg Config, opts *DecodeOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decode(src, cfg, opts)
}
