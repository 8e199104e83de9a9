package blob

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/eri/encoding"
	"github.com/arloliu/eri/endian"
	"github.com/arloliu/eri/errs"
	"github.com/arloliu/eri/internal/options"
	"github.com/arloliu/eri/section"
)

const (
	defaultInitialCapacity = 64
	stagingGrowthThreshold = 1024
)

// Encode encodes entries into a new ERI buffer.
//
// Every entry's embedding must have exactly embeddingSize components. The
// output size is computed up front and the buffer is allocated exactly once.
//
// Returns:
//   - []byte: The encoded container, suitable for NewDecoder
//   - error: errs.ErrInvalidEmbeddingSize, errs.ErrEmbeddingLengthMismatch,
//     errs.ErrTooManyEntries, errs.ErrStringTooLong, or errs.ErrInvalidUTF8
//     when WithUTF8Check is set
func Encode(entries []Entry, embeddingSize int, opts ...EncoderOption) ([]byte, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.NewHeader(len(entries), embeddingSize)
	if err != nil {
		return nil, err
	}

	stringBytes := 0
	for i := range entries {
		if len(entries[i].Embedding) != embeddingSize {
			return nil, fmt.Errorf("%w: entry %d has %d components, expected %d",
				errs.ErrEmbeddingLengthMismatch, i, len(entries[i].Embedding), embeddingSize)
		}

		if err := checkResource(cfg, i, entries[i].ResourceString); err != nil {
			return nil, err
		}

		stringBytes += encoding.LenStringSize(entries[i].ResourceString)
	}

	size, err := encodedSize(header, stringBytes)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, size)
	offset := copy(buf, header.Bytes())

	for i := range entries {
		offset += encoding.PutFloat32s(engine, buf[offset:], entries[i].Embedding)
	}

	for i := range entries {
		offset += encoding.PutLenString(engine, buf[offset:], entries[i].ResourceString)
	}

	return buf, nil
}

// Encoder builds an ERI container one entry at a time.
//
// Embeddings are copied into a staging area on Add, so callers may reuse
// their slices. Finish computes the exact output size and allocates the
// result buffer once.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must be created for further encoding.
type Encoder struct {
	cfg           *encoderConfig
	embeddingSize int

	embeddings  []float32 // flat staging area, embeddingSize floats per entry
	resources   []string
	stringBytes int

	finished bool
}

// NewEncoder creates an Encoder for embeddings of embeddingSize components.
//
// Returns errs.ErrInvalidEmbeddingSize if embeddingSize is negative or
// exceeds uint32, or an option error.
func NewEncoder(embeddingSize int, opts ...EncoderOption) (*Encoder, error) {
	if _, err := section.NewHeader(0, embeddingSize); err != nil {
		return nil, err
	}

	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	capacity := cfg.initialCapacity
	if embeddingSize > 0 && capacity > math.MaxInt/embeddingSize {
		capacity = 0
	}

	return &Encoder{
		cfg:           cfg,
		embeddingSize: embeddingSize,
		embeddings:    make([]float32, 0, capacity*embeddingSize),
		resources:     make([]string, 0, capacity),
	}, nil
}

// Add appends an entry.
//
// Returns:
//   - error: errs.ErrEncoderFinished, errs.ErrEmbeddingLengthMismatch,
//     errs.ErrTooManyEntries, errs.ErrStringTooLong, or errs.ErrInvalidUTF8
//     when WithUTF8Check is set
func (e *Encoder) Add(embedding []float32, resource string) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	index := len(e.resources)
	if len(embedding) != e.embeddingSize {
		return fmt.Errorf("%w: entry %d has %d components, expected %d",
			errs.ErrEmbeddingLengthMismatch, index, len(embedding), e.embeddingSize)
	}

	if uint64(index) >= section.MaxCount {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyEntries, uint64(section.MaxCount))
	}

	if err := checkResource(e.cfg, index, resource); err != nil {
		return err
	}

	e.growStaging()
	e.embeddings = append(e.embeddings, embedding...)
	e.resources = append(e.resources, resource)
	e.stringBytes += encoding.LenStringSize(resource)

	return nil
}

// AddEntry appends entry. It is equivalent to Add(entry.Embedding, entry.ResourceString).
func (e *Encoder) AddEntry(entry Entry) error {
	return e.Add(entry.Embedding, entry.ResourceString)
}

// Len returns the number of entries added so far.
func (e *Encoder) Len() int {
	return len(e.resources)
}

// EmbeddingSize returns the configured number of components per embedding.
func (e *Encoder) EmbeddingSize() int {
	return e.embeddingSize
}

// Size returns the encoded size in bytes of the entries added so far.
func (e *Encoder) Size() int {
	return section.HeaderSize + len(e.embeddings)*section.FloatSize + e.stringBytes
}

// Finish encodes all added entries and returns the ERI buffer.
//
// After Finish the encoder rejects further calls with errs.ErrEncoderFinished.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	header, err := section.NewHeader(len(e.resources), e.embeddingSize)
	if err != nil {
		return nil, err
	}

	size, err := encodedSize(header, e.stringBytes)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, size)
	offset := copy(buf, header.Bytes())
	offset += encoding.PutFloat32s(engine, buf[offset:], e.embeddings)

	for _, s := range e.resources {
		offset += encoding.PutLenString(engine, buf[offset:], s)
	}

	e.embeddings = nil
	e.resources = nil

	return buf, nil
}

// growStaging reserves room for one more entry.
// Uses 2x growth up to stagingGrowthThreshold entries and 1.25x beyond.
func (e *Encoder) growStaging() {
	if len(e.resources) < cap(e.resources) {
		return
	}

	oldCap := cap(e.resources)
	newCap := oldCap * 2
	if oldCap >= stagingGrowthThreshold {
		newCap = oldCap + oldCap/4
	}
	if newCap == 0 {
		newCap = 1
	}

	resources := make([]string, len(e.resources), newCap)
	copy(resources, e.resources)
	e.resources = resources

	if e.embeddingSize > 0 && newCap <= math.MaxInt/e.embeddingSize {
		embeddings := make([]float32, len(e.embeddings), newCap*e.embeddingSize)
		copy(embeddings, e.embeddings)
		e.embeddings = embeddings
	}
}

// checkResource validates one resource string against the format limits.
func checkResource(cfg *encoderConfig, index int, s string) error {
	if uint64(len(s)) > section.MaxCount {
		return fmt.Errorf("%w: entry %d has %d bytes", errs.ErrStringTooLong, index, len(s))
	}

	if cfg.checkUTF8 && !utf8.ValidString(s) {
		return fmt.Errorf("%w: entry %d", errs.ErrInvalidUTF8, index)
	}

	return nil
}

// encodedSize returns the total container size for header plus stringBytes
// bytes of length-prefixed strings.
func encodedSize(header section.Header, stringBytes int) (int, error) {
	offset, ok := header.StringsOffset()
	if !ok || offset > math.MaxInt-stringBytes {
		return 0, fmt.Errorf("%w: container size exceeds addressable memory", errs.ErrTooManyEntries)
	}

	return offset + stringBytes, nil
}
