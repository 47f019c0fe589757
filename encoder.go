// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

// Encode compresses src into dst under cfg and returns the written prefix of
// dst. dst must be sized by the caller; Encode never allocates a destination
// buffer of its own and fails with ErrOutputBufferTooSmall rather than
// growing dst.
//
// The encoder performs a sliding-window longest-match search: at each
// position p it searches the window of up to cfg.WindowSize() preceding
// bytes for the longest prefix match against the next cfg.LookaheadSize()
// bytes. A match of length >= 2 is emitted as a back-reference record;
// otherwise the byte at p is emitted as a literal.
func Encode(src, dst []byte, cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w := newBitWriter(dst)
	n := len(src)
	windowSize := cfg.WindowSize()
	maxLen := cfg.LookaheadSize()

	for p := 0; p < n; {
		windowStart := 0
		if p > windowSize {
			windowStart = p - windowSize
		}

		lookaheadLen := maxLen
		if rem := n - p; rem < lookaheadLen {
			lookaheadLen = rem
		}

		dist, length := findLongestMatch(src, p, windowStart, lookaheadLen)

		if length >= minMatchLen {
			if err := w.writeBits(0, 1); err != nil {
				return nil, err
			}
			if err := w.writeBits(uint32(dist-1), cfg.WindowBits()); err != nil {
				return nil, err
			}
			if err := w.writeBits(uint32(length-1), cfg.LookaheadBits()); err != nil {
				return nil, err
			}
			p += length
			continue
		}

		if err := w.writeBits(1, 1); err != nil {
			return nil, err
		}
		if err := w.writeBits(uint32(src[p]), 8); err != nil {
			return nil, err
		}
		p++
	}

	return w.finish()
}
