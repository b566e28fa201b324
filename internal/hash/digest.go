// Package hash computes xxHash64 digests of capture payloads for traceability.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// NewDigest creates a streaming xxHash64 digest for hashing a capture payload
// incrementally as it is read.
func NewDigest() *xxhash.Digest {
	return xxhash.New()
}
