package heatshrink

import (
	"bytes"
	"testing"
)

func TestAPIContract_DecodeAllowsTrailingBytes(t *testing.T) {
	cfg := DefaultConfig()
	src := bytes.Repeat([]byte("api-contract"), 64)

	dst := make([]byte, len(src)*2)
	compressed, err := Encode(src, dst, cfg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	out, err := Decode(payload, cfg, DefaultDecodeOptions(len(src)))
	if err != nil {
		t.Fatalf("Decode with trailing bytes failed: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for trailing-byte input")
	}
}

// TestAPIContract_DecodeStopsAtOutLen shows Decode pulls exactly OutLen
// bytes from the Decoder and no more, even when the underlying stream could
// keep producing output (e.g. more literal records follow).
func TestAPIContract_DecodeStopsAtOutLen(t *testing.T) {
	cfg := DefaultConfig()
	src := bytes.Repeat([]byte("short-output"), 32)

	dst := make([]byte, len(src)*2)
	compressed, err := Encode(src, dst, cfg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	prefixLen := len(src) / 2
	out, err := Decode(compressed, cfg, DefaultDecodeOptions(prefixLen))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(out) != prefixLen {
		t.Fatalf("decoded length mismatch: got=%d want=%d", len(out), prefixLen)
	}
	if !bytes.Equal(out, src[:prefixLen]) {
		t.Fatal("decoded output mismatch")
	}
}

// TestAPIContract_DecodeCanonicalStream checks a hand-built literal-only
// stream decodes to the exact bytes encoded, independent of the encoder's
// own match-finding.
func TestAPIContract_DecodeCanonicalStream(t *testing.T) {
	cfg := DefaultConfig()
	msg := []byte("canonical")

	w := newBitWriter(make([]byte, len(msg)*2))
	for _, b := range msg {
		if err := w.writeBits(1, 1); err != nil {
			t.Fatalf("writeBits failed: %v", err)
		}
		if err := w.writeBits(uint32(b), 8); err != nil {
			t.Fatalf("writeBits failed: %v", err)
		}
	}
	compressed, err := w.finish()
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	out, err := Decode(compressed, cfg, DefaultDecodeOptions(len(msg)))
	if err != nil {
		t.Fatalf("Decode failed for canonical stream: %v", err)
	}

	if !bytes.Equal(out, msg) {
		t.Fatal("canonical stream decoded data mismatch")
	}
}
