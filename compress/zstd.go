package compress

// ZstdCompressor provides Zstandard compression for capture payloads.
//
// Zstd offers the best compression ratio of the supported codecs and is the
// usual choice for archived captures. The implementation is selected at build
// time: gozstd (cgo bindings to libzstd) when cgo is available, and the
// pure-Go klauspost/compress/zstd otherwise. Both produce standard Zstandard
// frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
