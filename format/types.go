// Package format defines shared enumerations for the pack12 capture pipeline.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/pack12/errs"
)

// CompressionType identifies the compression applied to a capture file before
// its packed sample payload is decoded.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a user-facing name ("none", "zstd", "s2", "lz4") to its
// CompressionType. The match is case-insensitive.
//
// Returns:
//   - CompressionType: Parsed compression type
//   - error: errs.ErrInvalidCompression if the name is not recognized
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// CompressionForExt maps a capture file extension (".zst", ".s2", ".lz4") to
// the compression type used to store it. Unrecognized extensions map to
// CompressionNone.
func CompressionForExt(ext string) CompressionType {
	switch strings.ToLower(ext) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
