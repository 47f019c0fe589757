// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

// ringCopyOne copies a single byte from ring[tail-rewind] to ring[tail] and
// returns the new tail. Unlike a flat output buffer, the ring is only
// cfg.WindowSize() bytes, which can be smaller than a single back-reference
// run (overlap runs with a small rewind can legally emit far more bytes than
// the window holds, e.g. rewind=1 replicating one byte thousands of times).
// Copying one byte at a time, with the caller draining via Next() between
// calls, keeps tail-head <= 1 at all times so the ring never has to hold
// more than a window's worth of history, however long the run.
func ringCopyOne(ring []byte, mask, tail uint64, rewind uint32) (byte, uint64) {
	c := ring[(tail-uint64(rewind))&mask]
	ring[tail&mask] = c
	return c, tail + 1
}
