// Package pack12 processes streams of densely packed unsigned 12-bit samples.
//
// A capture is a sequence of 12-bit samples packed big-endian with no
// separators, two samples per 3-byte group, optionally ending with a 16-bit
// group holding a final odd sample (a single dangling byte is ignored). From
// one pass over a capture, pack12 derives two fixed-capacity views:
//
//   - the most recent 32 samples, in arrival order
//   - the 32 largest samples seen, in ascending order
//
// For captures shorter than 32 samples, both views hold every sample.
//
// # Basic Usage
//
//	import "github.com/arloliu/pack12"
//
//	proc, _ := pack12.NewProcessor()
//	result, err := proc.Process(file)
//	if err != nil {
//	    return err
//	}
//	_ = pack12.WriteReport(os.Stdout, result)
//
// Compressed captures decompress transparently:
//
//	proc, _ := pack12.NewProcessor(pack12.WithCompression(format.CompressionZstd))
//
// The lower-level building blocks live in their own packages: the sample
// codec in encoding, the tracking structures in track, and the payload codecs
// in compress.
package pack12

import (
	"fmt"
	"io"

	"github.com/arloliu/pack12/compress"
	"github.com/arloliu/pack12/encoding"
	"github.com/arloliu/pack12/errs"
	"github.com/arloliu/pack12/format"
	"github.com/arloliu/pack12/internal/hash"
	"github.com/arloliu/pack12/internal/options"
	"github.com/arloliu/pack12/internal/pool"
	"github.com/arloliu/pack12/track"
)

// TrackedValues is the fixed capacity of both derived views.
const TrackedValues = 32

// Report section headers, kept byte-compatible with the original capture
// tooling.
const (
	maxSectionHeader    = "--Sorted Max 32 Values--"
	recentSectionHeader = "--Last 32 Values--"
)

// Result holds the two derived views plus stream metadata from one processed
// capture.
type Result struct {
	// Recent holds up to TrackedValues samples in arrival order, oldest first.
	Recent []uint16

	// Max holds up to TrackedValues samples in ascending order: the largest
	// samples seen across the whole capture.
	Max []uint16

	// Count is the total number of samples decoded.
	Count uint64

	// Digest is the xxHash64 of the raw packed payload (after decompression),
	// for capture traceability.
	Digest uint64
}

// Processor decodes a packed 12-bit capture and feeds every sample into both
// tracking structures in strict sequence.
//
// A Processor is single-use per capture and not safe for concurrent use. All
// tracking state is owned by the Processor instance; there is no package
// level state.
type Processor struct {
	compression format.CompressionType
	readBufSize int

	recent *track.Ring
	topk   *track.TopK
}

// Option is a functional option for configuring a Processor.
type Option = options.Option[*Processor]

// WithCompression configures the processor to transparently decompress the
// capture with the given codec before decoding samples.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(p *Processor) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		p.compression = ct

		return nil
	})
}

// WithReadBufferSize sets the buffered read size used while streaming an
// uncompressed capture. The size must hold at least one 3-byte group.
func WithReadBufferSize(size int) Option {
	return options.New(func(p *Processor) error {
		if size < encoding.GroupSize {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidBufferSize, size)
		}
		p.readBufSize = size

		return nil
	})
}

// NewProcessor creates a Processor with both tracking structures initialized
// empty at the fixed TrackedValues capacity.
//
// Returns:
//   - *Processor: A new processor ready for one capture
//   - error: Configuration error from an option
func NewProcessor(opts ...Option) (*Processor, error) {
	p := &Processor{
		compression: format.CompressionNone,
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	// TrackedValues is a positive constant, so construction cannot fail here.
	var err error
	if p.recent, err = track.NewRing(TrackedValues); err != nil {
		return nil, err
	}
	if p.topk, err = track.NewTopK(TrackedValues); err != nil {
		return nil, err
	}

	return p, nil
}

// Process decodes every sample from r and returns the derived views.
//
// Samples flow through both structures in decode order: each value is pushed
// into the recency window and offered to the top-K tracker before the next is
// decoded. On a read (or decompression) failure the error is returned and no
// Result is produced; partial results are not part of the contract.
func (p *Processor) Process(r io.Reader) (*Result, error) {
	if p.compression != format.CompressionNone {
		return p.processCompressed(r)
	}

	digest := hash.NewDigest()
	var decoder *encoding.StreamDecoder
	if p.readBufSize > 0 {
		decoder = encoding.NewStreamDecoderSize(io.TeeReader(r, digest), p.readBufSize)
	} else {
		decoder = encoding.NewStreamDecoder(io.TeeReader(r, digest))
	}

	for v := range decoder.All() {
		p.recent.Push(v)
		p.topk.Offer(v)
	}
	if err := decoder.Err(); err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	return p.result(decoder.Count(), digest.Sum64()), nil
}

// processCompressed reads the whole capture into a pooled buffer, restores
// the packed payload with the configured codec, and decodes it in memory.
func (p *Processor) processCompressed(r io.Reader) (*Result, error) {
	codec, err := compress.GetCodec(p.compression)
	if err != nil {
		return nil, err
	}

	raw := pool.GetCaptureBuffer()
	defer pool.PutCaptureBuffer(raw)

	if _, err := io.Copy(raw, r); err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	// Every codec reachable here allocates a fresh payload, so returning the
	// pooled buffer never invalidates it.
	payload, err := codec.Decompress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decompress capture (%s): %w", p.compression, err)
	}

	decoder := encoding.NewPacked12Decoder()
	var count uint64
	for v := range decoder.All(payload) {
		p.recent.Push(v)
		p.topk.Offer(v)
		count++
	}

	return p.result(count, hash.Sum64(payload)), nil
}

func (p *Processor) result(count uint64, digest uint64) *Result {
	return &Result{
		Recent: p.recent.Values(),
		Max:    p.topk.Values(),
		Count:  count,
		Digest: digest,
	}
}

// WriteReport writes the derived views as text: the sorted max section first,
// then the recency section, one decimal value per line under each fixed
// header. The layout is byte-compatible with the original capture tooling.
func WriteReport(w io.Writer, res *Result) error {
	if err := writeSection(w, maxSectionHeader, res.Max); err != nil {
		return err
	}

	return writeSection(w, recentSectionHeader, res.Recent)
}

func writeSection(w io.Writer, header string, values []uint16) error {
	if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return err
		}
	}

	return nil
}
