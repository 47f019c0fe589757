// Command heatshrink is a standalone encoder/decoder for the heatshrink
// bitstream format.
//
// The format carries no header, so decoding needs the original length
// out-of-band. This CLI supplies it itself: encode writes an 8-byte
// big-endian length prefix ahead of the bitstream, and decode reads it back.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/woozymasta/heatshrink"
)

func main() {
	mode := flag.String("mode", "encode", "encode or decode")
	inputFile := flag.String("input-file", "", "path to the input file")
	outputFile := flag.String("output-file", "", "path to the output file")
	window := flag.Int("window", 11, "window_sz2, bits of window addressing")
	lookahead := flag.Int("lookahead", 4, "lookahead_sz2, bits of back-reference length")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		fmt.Println("Usage: heatshrink -mode encode|decode -input-file IN -output-file OUT")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := heatshrink.NewConfig(*window, *lookahead)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	in, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("cannot read input file %q: %v", *inputFile, err)
	}

	var out []byte
	switch *mode {
	case "encode":
		out, err = runEncode(in, cfg)
	case "decode":
		out, err = runDecode(in, cfg)
	default:
		log.Fatalf("unknown mode %q (want encode or decode)", *mode)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", *mode, err)
	}

	if err := os.WriteFile(*outputFile, out, 0o644); err != nil {
		log.Fatalf("cannot write output file %q: %v", *outputFile, err)
	}

	log.Printf("%s: %d -> %d bytes", *mode, len(in), len(out))
}

func runEncode(in []byte, cfg heatshrink.Config) ([]byte, error) {
	dst := make([]byte, len(in)*2+1024)
	compressed, err := heatshrink.Encode(in, dst, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 8+len(compressed))
	binary.BigEndian.PutUint64(out[:8], uint64(len(in)))
	copy(out[8:], compressed)
	return out, nil
}

func runDecode(in []byte, cfg heatshrink.Config) ([]byte, error) {
	if len(in) < 8 {
		return nil, fmt.Errorf("input too short to hold a length prefix: %d bytes", len(in))
	}
	outLen := binary.BigEndian.Uint64(in[:8])
	return heatshrink.Decode(in[8:], cfg, heatshrink.DefaultDecodeOptions(int(outLen)))
}
