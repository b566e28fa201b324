package encoding

import (
	"iter"

	"github.com/arloliu/pack12/endian"
	"github.com/arloliu/pack12/internal/pool"
)

const (
	// SampleBits is the width of one packed sample.
	SampleBits = 12

	// SampleMask masks a native integer down to one sample.
	SampleMask = 0xFFF

	// MaxSample is the largest representable sample value.
	MaxSample = 4095

	// GroupSize is the byte length of one full packed group.
	GroupSize = 3

	// SamplesPerGroup is the number of samples held by one full group.
	SamplesPerGroup = 2

	// tailSize is the byte length of the trailing group emitted for an odd
	// sample count: one 16-bit big-endian word, sample in the high 12 bits.
	tailSize = 2

	// tailShift aligns the sample field of a trailing 16-bit group.
	tailShift = 4
)

// Packed12Encoder packs unsigned 12-bit samples into a big-endian payload.
//
// Samples are packed in pairs into 3-byte groups. While the pending sample
// count is odd, the internal buffer ends with a provisional 16-bit trailing
// group, so Bytes() always returns a valid payload for every sample written
// so far; the next Write replaces that trailing group with a full 3-byte one.
//
// Values above MaxSample are masked to 12 bits.
type Packed12Encoder struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	pending uint16
	odd     bool
	count   int
}

var _ ColumnarEncoder[uint16] = (*Packed12Encoder)(nil)

// NewPacked12Encoder creates a new packed 12-bit sample encoder.
//
// The payload byte order is fixed big-endian by the format, so no engine
// parameter is exposed.
//
// Returns:
//   - *Packed12Encoder: A new encoder instance ready for sample encoding
func NewPacked12Encoder() *Packed12Encoder {
	return &Packed12Encoder{
		buf:    pool.GetSampleBuffer(),
		engine: endian.GetBigEndianEngine(),
	}
}

// Write encodes a single sample.
//
// Panics if Finish() has been called (nil buffer).
//
// Parameters:
//   - val: The sample to encode; masked to 12 bits
func (e *Packed12Encoder) Write(val uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	val &= SampleMask
	e.count++

	if !e.odd {
		// Provisional trailing group until a partner sample arrives.
		e.pending = val
		e.odd = true
		e.buf.Grow(tailSize)
		bufLen := e.buf.Len()
		e.engine.PutUint16(e.buf.Slice(bufLen, bufLen+tailSize), val<<tailShift)
		e.buf.SetLength(bufLen + tailSize)

		return
	}

	// Replace the provisional 16-bit group with a full 3-byte group holding
	// both samples.
	e.odd = false
	bufLen := e.buf.Len() - tailSize
	e.buf.SetLength(bufLen)
	e.buf.Grow(GroupSize)
	word := uint32(e.pending)<<SampleBits | uint32(val)
	endian.PutUint24(e.buf.Slice(bufLen, bufLen+GroupSize), word)
	e.buf.SetLength(bufLen + GroupSize)
}

// WriteSlice encodes a slice of samples.
//
// The buffer is pre-grown for the whole slice to minimize reallocations
// during bulk encoding.
//
// Panics if Finish() has been called (nil buffer).
//
// Parameters:
//   - values: Samples to encode; each masked to 12 bits
func (e *Packed12Encoder) WriteSlice(values []uint16) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}

	// Worst case: every value completes or opens a group.
	e.buf.Grow((len(values)/SamplesPerGroup+1)*GroupSize + tailSize)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the encoded payload for all samples written so far.
//
// The returned slice is valid until the next call to Write or WriteSlice and
// must not be modified by the caller. When the sample count is odd the payload
// ends with a 16-bit trailing group.
//
// Panics if Finish() has been called (nil buffer).
func (e *Packed12Encoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded samples.
func (e *Packed12Encoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded payload.
//
// Panics if Finish() has been called (nil buffer).
func (e *Packed12Encoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset clears the encoder state, allowing it to be reused for a new payload.
//
// Unlike Finish, Reset keeps the pooled buffer attached to the encoder.
func (e *Packed12Encoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.pending = 0
	e.odd = false
	e.count = 0
}

// Finish finalizes the encoding process and returns buffer resources to the pool.
//
// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
// Write(), WriteSlice(), Bytes(), or Size() will panic due to nil buffer.
//
// To encode more data, create a new encoder instance.
func (e *Packed12Encoder) Finish() {
	if e.buf != nil {
		pool.PutSampleBuffer(e.buf)
		e.buf = nil
	}
	e.pending = 0
	e.odd = false
	e.count = 0
}

// Packed12Decoder decodes packed 12-bit samples from an in-memory payload.
//
// The decoder is immutable and stateless; the zero-cost value type can be
// reused and shared freely.
type Packed12Decoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[uint16] = Packed12Decoder{}

// NewPacked12Decoder creates a new packed 12-bit sample decoder.
//
// This function returns the decoder by value (not pointer): the struct is
// stateless, so value semantics avoid any heap allocation.
func NewPacked12Decoder() Packed12Decoder {
	return Packed12Decoder{engine: endian.GetBigEndianEngine()}
}

// CountSamples returns the number of samples held by a payload of the given
// byte length: two per full 3-byte group, plus one for a 2-byte tail. A
// single dangling byte holds no sample.
func CountSamples(data []byte) int {
	count := len(data) / GroupSize * SamplesPerGroup
	if len(data)%GroupSize == tailSize {
		count++
	}

	return count
}

// All decodes every sample from the given payload, in stream order.
//
// Each full 3-byte group yields two samples: bits [12..23] first, then bits
// [0..11]. A 2-byte tail yields one sample from the high 12 bits of the
// big-endian 16-bit word. A 1-byte tail is discarded silently.
//
// Parameters:
//   - data: Encoded payload from Packed12Encoder.Bytes()
//
// Returns:
//   - iter.Seq[uint16]: Iterator yielding decoded samples
func (d Packed12Decoder) All(data []byte) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		i := 0
		for ; i+GroupSize <= len(data); i += GroupSize {
			word := endian.Uint24(data[i:])
			if !yield(uint16(word>>SampleBits) & SampleMask) {
				return
			}
			if !yield(uint16(word) & SampleMask) {
				return
			}
		}

		if len(data)-i == tailSize {
			word := d.engine.Uint16(data[i:])
			yield((word >> tailShift) & SampleMask)
		}
	}
}

// At retrieves the sample at the specified zero-based index from the payload.
//
// If the index is out of bounds (negative or >= CountSamples(data)), the
// method returns false.
//
// Parameters:
//   - data: Encoded payload from Packed12Encoder.Bytes()
//   - index: Zero-based sample index
//
// Returns:
//   - uint16: The sample at the specified index
//   - bool: true if the index exists, false otherwise
func (d Packed12Decoder) At(data []byte, index int) (uint16, bool) {
	if index < 0 || index >= CountSamples(data) {
		return 0, false
	}

	offset := index / SamplesPerGroup * GroupSize
	if offset+GroupSize <= len(data) {
		word := endian.Uint24(data[offset:])
		if index%SamplesPerGroup == 0 {
			return uint16(word>>SampleBits) & SampleMask, true
		}

		return uint16(word) & SampleMask, true
	}

	// Trailing 16-bit group.
	word := d.engine.Uint16(data[offset:])

	return (word >> tailShift) & SampleMask, true
}
