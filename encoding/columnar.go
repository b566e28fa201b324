package encoding

import "iter"

// ColumnarEncoder is the common shape of pack12 payload encoders.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write or WriteSlice.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded payload.
	Size() int

	// Reset clears the encoder counters but keeps the accumulated data in the
	// internal buffer, allowing the encoder to be reused for a new sequence of
	// values until the end of the encoding process.
	Reset()

	// Finish finalizes the encoding process and returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), or Size() will result in a panic due to nil buffer.
	//
	// To encode more data, create a new encoder instance.
	Finish()

	// Write encodes a single value.
	//
	// This method is optimized for appending a single value.
	// For bulk writes, use WriteSlice for better performance.
	Write(data T)

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use Write.
	WriteSlice(values []T)
}

// ColumnarDecoder is the common shape of pack12 payload decoders.
//
// Unlike formats that need an external value count, a packed 12-bit payload
// fully determines its sample count from its byte length, so decoding
// operations take only the payload.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator that yields all decoded values from the provided
	// encoded payload, in stream order.
	//
	// The data should be the byte slice payload produced by a corresponding
	// encoder. A trailing byte that cannot hold a whole value is ignored.
	All(data []byte) iter.Seq[T]

	// At retrieves the value at the specified zero-based index from the
	// encoded payload.
	//
	// If the index is out of bounds, the second return value is false.
	At(data []byte, index int) (T, bool)
}
