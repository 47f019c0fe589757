// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "fmt"

// minConfigBits and maxConfigBits bound both window_sz2 and lookahead_sz2.
const (
	minConfigBits = 1
	maxConfigBits = 16
)

// Config is the validated (window_sz2, lookahead_sz2) pair shared by Encode
// and Decoder. It is a small copyable value with no behavior beyond
// validation: the window holds 1<<window_sz2 prior output bytes, and a
// back-reference may span up to 1<<lookahead_sz2 bytes.
type Config struct {
	windowSz2    uint8
	lookaheadSz2 uint8
}

// DefaultConfig returns the reference window/lookahead pair (11, 4).
func DefaultConfig() Config {
	return Config{windowSz2: 11, lookaheadSz2: 4}
}

// NewConfig validates and builds a Config. Both parameters must be in [1,16].
func NewConfig(windowSz2, lookaheadSz2 int) (Config, error) {
	c, err := DefaultConfig().WithWindow(windowSz2)
	if err != nil {
		return Config{}, err
	}
	return c.WithLookahead(lookaheadSz2)
}

// WithWindow returns a copy of c with window_sz2 set, or an error if out of range.
func (c Config) WithWindow(windowSz2 int) (Config, error) {
	if windowSz2 < minConfigBits || windowSz2 > maxConfigBits {
		return Config{}, fmt.Errorf("%w: got %d", ErrWindowOutOfRange, windowSz2)
	}
	c.windowSz2 = uint8(windowSz2)
	return c, nil
}

// WithLookahead returns a copy of c with lookahead_sz2 set, or an error if out of range.
func (c Config) WithLookahead(lookaheadSz2 int) (Config, error) {
	if lookaheadSz2 < minConfigBits || lookaheadSz2 > maxConfigBits {
		return Config{}, fmt.Errorf("%w: got %d", ErrLookaheadOutOfRange, lookaheadSz2)
	}
	c.lookaheadSz2 = uint8(lookaheadSz2)
	return c, nil
}

// validate re-checks an already-constructed Config (defends against a Config
// built via the zero value rather than NewConfig).
func (c Config) validate() error {
	if c.windowSz2 < minConfigBits || c.windowSz2 > maxConfigBits {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, fmt.Errorf("%w: got %d", ErrWindowOutOfRange, c.windowSz2))
	}
	if c.lookaheadSz2 < minConfigBits || c.lookaheadSz2 > maxConfigBits {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, fmt.Errorf("%w: got %d", ErrLookaheadOutOfRange, c.lookaheadSz2))
	}
	return nil
}

// WindowBits returns window_sz2.
func (c Config) WindowBits() uint8 { return c.windowSz2 }

// LookaheadBits returns lookahead_sz2.
func (c Config) LookaheadBits() uint8 { return c.lookaheadSz2 }

// WindowSize returns 1<<window_sz2, the number of prior output bytes addressable.
func (c Config) WindowSize() int { return 1 << c.windowSz2 }

// LookaheadSize returns 1<<lookahead_sz2, the maximum back-reference length.
func (c Config) LookaheadSize() int { return 1 << c.lookaheadSz2 }
