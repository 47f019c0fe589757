// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "io"

// decoderState is the decoder's ten-way state machine node: seven parsing
// states plus three terminal ones (clean end, truncated, illegal). A switch over
// this integer tag drives transitions; the states are exhaustive and static,
// so no polymorphic dispatch is used.
type decoderState uint8

const (
	stateTagBit decoderState = iota
	stateYieldLiteral
	stateBackrefIndexMsb
	stateBackrefIndexLsb
	stateBackrefCountMsb
	stateBackrefCountLsb
	stateYieldBackref
	stateDone      // clean end-of-input on a tag-bit boundary
	stateTruncated // end-of-input inside a record's multi-bit field
	stateIllegal   // back-reference addresses un-emitted output
)

// Decoder is a streaming, byte-pull consumer of a compressed byte slice. It
// holds a borrow on the input slice passed to NewDecoder or Reset; that
// slice must not be mutated while the Decoder is in use.
type Decoder struct {
	cfg      Config
	input    []byte
	inputPos int

	bitAccum uint32
	bitCount uint8

	state       decoderState
	rewind      uint32
	outputCount uint32

	ring []byte
	mask uint64
	head uint64
	tail uint64
}

// NewDecoder builds a decoder ready to produce the first output byte of input.
func NewDecoder(input []byte, cfg Config) *Decoder {
	ringSize := cfg.WindowSize()
	d := &Decoder{
		cfg:  cfg,
		ring: make([]byte, ringSize),
		mask: uint64(ringSize - 1),
	}
	d.Reset(input)
	return d
}

// Reset reinitializes the decoder against a new input slice with the
// existing Config, zeroing all cursors, state, and the bit accumulator.
func (d *Decoder) Reset(input []byte) bool {
	d.input = input
	d.inputPos = 0
	d.bitAccum = 0
	d.bitCount = 0
	d.state = stateTagBit
	d.rewind = 0
	d.outputCount = 0
	d.head = 0
	d.tail = 0
	return true
}

// Next drives the state machine until exactly one output byte is available
// and returns it. It returns io.EOF once the compressed stream is cleanly
// exhausted on a tag-bit boundary, ErrTruncatedStream if input ends inside a
// record's field, and ErrIllegalBackref if a back-reference addresses bytes
// before the start of emitted output. Callers must know the uncompressed
// length out-of-band and stop calling Next at that length; calling Next past
// the real end of data returns padding-derived garbage or one of the above
// errors, and is a caller error either way.
func (d *Decoder) Next() (byte, error) {
	windowBits := d.cfg.WindowBits()
	lookaheadBits := d.cfg.LookaheadBits()

	for d.head == d.tail {
		switch d.state {
		case stateTagBit:
			bits, ok := d.getBits(1)
			switch {
			case !ok:
				d.state = stateDone
			case bits == 1:
				d.state = stateYieldLiteral
			case windowBits > 8:
				d.state = stateBackrefIndexMsb
			default:
				d.rewind = 0
				d.state = stateBackrefIndexLsb
			}

		case stateYieldLiteral:
			bits, ok := d.getBits(8)
			if !ok {
				d.state = stateTruncated
				continue
			}
			d.ring[d.tail&d.mask] = byte(bits)
			d.tail++
			d.state = stateTagBit

		case stateBackrefIndexMsb:
			bits, ok := d.getBits(windowBits - 8)
			if !ok {
				d.state = stateTruncated
				continue
			}
			d.rewind = bits << 8
			d.state = stateBackrefIndexLsb

		case stateBackrefIndexLsb:
			width := windowBits
			if width > 8 {
				width = 8
			}
			bits, ok := d.getBits(width)
			if !ok {
				d.state = stateTruncated
				continue
			}
			d.rewind |= bits
			d.rewind++
			d.outputCount = 0
			if lookaheadBits > 8 {
				d.state = stateBackrefCountMsb
			} else {
				d.state = stateBackrefCountLsb
			}

		case stateBackrefCountMsb:
			bits, ok := d.getBits(lookaheadBits - 8)
			if !ok {
				d.state = stateTruncated
				continue
			}
			d.outputCount = bits << 8
			d.state = stateBackrefCountLsb

		case stateBackrefCountLsb:
			width := lookaheadBits
			if width > 8 {
				width = 8
			}
			bits, ok := d.getBits(width)
			if !ok {
				d.state = stateTruncated
				continue
			}
			d.outputCount |= bits
			d.outputCount++
			d.state = stateYieldBackref

		case stateYieldBackref:
			if uint64(d.rewind) > d.tail {
				d.state = stateIllegal
				continue
			}
			_, newTail := ringCopyOne(d.ring, d.mask, d.tail, d.rewind)
			d.tail = newTail
			d.outputCount--
			if d.outputCount == 0 {
				d.state = stateTagBit
			}

		case stateDone:
			return 0, io.EOF

		case stateTruncated:
			return 0, ErrTruncatedStream

		case stateIllegal:
			return 0, ErrIllegalBackref
		}
	}

	b := d.ring[d.head&d.mask]
	d.head++
	return b, nil
}

// getBits services a request of up to 16 bits from a 32-bit accumulator,
// MSB-first: the top count bits of the accumulator are returned and its
// effective length shrinks by count. When fewer than count bits are held,
// input is shifted in one byte at a time on the low side. Returns ok=false
// on end-of-input before count bits could be accumulated.
func (d *Decoder) getBits(count uint8) (bits uint32, ok bool) {
	for d.bitCount < count {
		if d.inputPos >= len(d.input) {
			return 0, false
		}
		d.bitAccum = d.bitAccum<<8 | uint32(d.input[d.inputPos])
		d.inputPos++
		d.bitCount += 8
	}

	shift := d.bitCount - count
	bits = (d.bitAccum >> shift) & ((1 << count) - 1)
	d.bitCount = shift
	return bits, true
}
