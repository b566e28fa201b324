package encoding

import (
	"bufio"
	"errors"
	"io"
	"iter"

	"github.com/arloliu/pack12/endian"
)

// StreamDecoder lazily decodes packed 12-bit samples from an io.Reader.
//
// The decoder reads the stream one 3-byte group at a time through a buffered
// reader, so arbitrarily large captures decode in constant memory. The sample
// sequence it produces is finite and single-pass: once All() has been
// iterated, the decoder is exhausted and a second iteration yields nothing.
//
// A StreamDecoder never fails on malformed bit widths; the only failure mode
// is an I/O error from the underlying reader, reported by Err() after
// iteration ends.
type StreamDecoder struct {
	r      *bufio.Reader
	engine endian.EndianEngine
	count  uint64
	err    error
	done   bool
}

// NewStreamDecoder creates a stream decoder over r with the default buffered
// read size.
func NewStreamDecoder(r io.Reader) *StreamDecoder {
	return &StreamDecoder{
		r:      bufio.NewReader(r),
		engine: endian.GetBigEndianEngine(),
	}
}

// NewStreamDecoderSize creates a stream decoder over r whose buffered reads
// use at least the given size. Sizes smaller than one 3-byte group are raised
// by the underlying bufio.Reader; callers validate user-facing configuration
// before reaching this point.
func NewStreamDecoderSize(r io.Reader, size int) *StreamDecoder {
	return &StreamDecoder{
		r:      bufio.NewReaderSize(r, size),
		engine: endian.GetBigEndianEngine(),
	}
}

// All returns an iterator yielding every sample in the stream, in order.
//
// Decoding semantics match Packed12Decoder.All: two samples per full 3-byte
// group, one sample for a trailing 2-byte group, nothing for a trailing
// single byte. The iterator stops early on an I/O error; check Err() after
// iteration. Breaking out of the iteration also exhausts the decoder.
func (d *StreamDecoder) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		if d.done {
			return
		}
		defer func() { d.done = true }()

		var group [GroupSize]byte
		for {
			n, err := io.ReadFull(d.r, group[:])
			switch {
			case err == nil:
				word := endian.Uint24(group[:])
				d.count++
				if !yield(uint16(word>>SampleBits) & SampleMask) {
					return
				}
				d.count++
				if !yield(uint16(word) & SampleMask) {
					return
				}
			case errors.Is(err, io.EOF):
				// Stream ended exactly on a group boundary.
				return
			case errors.Is(err, io.ErrUnexpectedEOF):
				if n == tailSize {
					word := d.engine.Uint16(group[:tailSize])
					d.count++
					yield((word >> tailShift) & SampleMask)
				}
				// A single leftover byte cannot hold a sample; discard it.
				return
			default:
				d.err = err
				return
			}
		}
	}
}

// Count returns the number of samples decoded so far.
func (d *StreamDecoder) Count() uint64 {
	return d.count
}

// Err returns the first I/O error encountered while reading the stream, or
// nil if the stream decoded to completion.
func (d *StreamDecoder) Err() error {
	return d.err
}
