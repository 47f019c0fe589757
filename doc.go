// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

/*
Package heatshrink implements the Heatshrink LZSS-style compression codec
(https://github.com/atomicobject/heatshrink), suitable for constrained
embedded environments: bounded working memory, streaming byte-at-a-time
decoding, and buffer-to-buffer encoding.

The codec is a raw bitstream with no header, footer, or checksum. Callers
must record the Config and original uncompressed length out-of-band.

# Encode

Encode is one-shot and writes into a caller-sized buffer:

	cfg, err := heatshrink.NewConfig(11, 4)
	out, err := heatshrink.Encode(data, dst, cfg)

# Decode

Decoder is a byte-pull state machine; Next returns one plaintext byte per
call and io.EOF once the tag-bit stream is cleanly exhausted:

	dec := heatshrink.NewDecoder(compressed, cfg)
	for i := 0; i < originalLen; i++ {
		b, err := dec.Next()
	}

Decode and DecodeFromReader wrap the same state machine for buffer- and
stream-oriented callers that already know the original length:

	out, err := heatshrink.Decode(compressed, cfg, heatshrink.DefaultDecodeOptions(originalLen))
*/
package heatshrink
