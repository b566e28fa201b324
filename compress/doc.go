// Package compress provides compression and decompression codecs for pack12
// capture payloads.
//
// Capture files holding packed 12-bit sample streams are routinely stored and
// shipped compressed. This package implements the block codecs the processing
// pipeline uses to restore the raw packed payload before sample decoding:
//
//   - None: No compression (pass-through)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType through GetCodec.
// The Zstd codec has two implementations selected at build time:
// gozstd (cgo bindings) when cgo is available, and klauspost/compress/zstd as
// the pure-Go fallback.
package compress
