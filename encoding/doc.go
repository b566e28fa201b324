// Package encoding implements the packed 12-bit sample codec.
//
// A capture payload is a sequence of unsigned 12-bit samples packed big-endian
// with no separators. Two consecutive samples share one 3-byte group (24 bits,
// the least common multiple of 12 and 8): the first sample occupies the high
// 12 bits, the second the low 12 bits. A stream holding an odd number of
// samples ends with a 16-bit group whose high 12 bits hold the final sample
// and whose low nibble is zero. A single dangling byte cannot hold a sample
// and is ignored by decoders.
//
// The package provides three entry points:
//
//   - Packed12Encoder packs samples into a payload (pool-backed buffer).
//   - Packed12Decoder decodes a complete in-memory payload via iterators.
//   - StreamDecoder lazily decodes an io.Reader without loading the payload.
package encoding
