package blob

import (
	"iter"
	"sync"
	"unicode/utf8"

	"github.com/arloliu/eri/encoding"
	"github.com/arloliu/eri/endian"
	"github.com/arloliu/eri/errs"
	"github.com/arloliu/eri/internal/lookup"
	"github.com/arloliu/eri/internal/options"
	"github.com/arloliu/eri/section"
)

// Operation names reported in errs.FormatError.
const (
	opOpen       = "open"
	opEmbeddings = "embeddings"
	opStrings    = "strings"
	opLookup     = "lookup"
	opSize       = "size"
)

// Decoder reads an ERI buffer.
//
// The decoder borrows the buffer without copying it and never modifies it.
// The buffer must not be modified while the decoder is in use.
//
// Extraction is stateless: every operation derives its start offset from the
// header, so Embeddings, Strings and All may be called in any order and any
// number of times with identical results. A Decoder is safe for concurrent
// use by multiple goroutines.
type Decoder struct {
	data          []byte
	header        section.Header
	engine        endian.EndianEngine
	stringsOffset int
	cfg           *decoderConfig

	indexOnce sync.Once
	index     *lookup.Index
	offsets   []int // start offset of every string record, filled with index
	indexErr  error
}

// NewDecoder validates the header of data and returns a decoder over it.
//
// Returns an *errs.FormatError wrapping errs.ErrBufferTooShort when data is
// shorter than the 11-byte header, errs.ErrInvalidSignature when it does not
// start with "ERI", and errs.ErrTruncatedBuffer when the declared embeddings
// block cannot fit in memory. With WithStrictLength, the strings block is
// walked as well (see WithStrictLength).
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg := defaultDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var header section.Header
	if err := header.Parse(data); err != nil {
		offset := section.SignatureOffset
		if len(data) < section.HeaderSize {
			offset = len(data)
		}

		return nil, errs.NewFormatError(opOpen, offset, err)
	}

	stringsOffset, ok := header.StringsOffset()
	if !ok {
		return nil, errs.NewFormatError(opOpen, section.HeaderSize, errs.ErrTruncatedBuffer)
	}

	d := &Decoder{
		data:          data,
		header:        header,
		engine:        endian.GetLittleEndianEngine(),
		stringsOffset: stringsOffset,
		cfg:           cfg,
	}

	if cfg.strictLength {
		size, err := d.EncodedSize()
		if err != nil {
			return nil, err
		}

		if size != len(data) {
			return nil, errs.NewFormatError(opOpen, size, errs.ErrTrailingData)
		}
	}

	return d, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// NumEntries returns the number of entries declared by the header.
func (d *Decoder) NumEntries() int {
	return int(d.header.NumEntries)
}

// Len is an alias of NumEntries.
func (d *Decoder) Len() int {
	return int(d.header.NumEntries)
}

// EmbeddingSize returns the number of float32 components per embedding.
func (d *Decoder) EmbeddingSize() int {
	return int(d.header.EmbeddingSize)
}

// StringsOffset returns the byte offset of the strings block.
func (d *Decoder) StringsOffset() int {
	return d.stringsOffset
}

// Bytes returns the underlying buffer. The caller must not modify it.
func (d *Decoder) Bytes() []byte {
	return d.data
}

// Embeddings decodes every embedding, in entry order.
//
// The strings block is not read. Returns an *errs.FormatError wrapping
// errs.ErrTruncatedBuffer if the embeddings block does not fit in the buffer.
func (d *Decoder) Embeddings() ([][]float32, error) {
	block, err := d.embeddingBlock()
	if err != nil {
		return nil, err
	}

	return block.DecodeAll(), nil
}

// Embedding decodes the embedding of entry i in O(1).
//
// Returns errs.ErrIndexOutOfRange if i is not in [0, NumEntries()).
func (d *Decoder) Embedding(i int) ([]float32, error) {
	if i < 0 || i >= d.NumEntries() {
		return nil, errs.ErrIndexOutOfRange
	}

	block, err := d.embeddingBlock()
	if err != nil {
		return nil, err
	}

	return block.At(i)
}

// EmbeddingsSeq returns an iterator over (index, embedding) pairs.
//
// The block bounds are checked before the iterator is returned, so iteration
// itself cannot fail. Each yielded embedding is a new slice owned by the caller.
func (d *Decoder) EmbeddingsSeq() (iter.Seq2[int, []float32], error) {
	block, err := d.embeddingBlock()
	if err != nil {
		return nil, err
	}

	return block.All(), nil
}

// Strings decodes every resource string, in entry order.
//
// The start of the strings block is computed from the header; the embeddings
// are never decoded. Returns an *errs.FormatError wrapping
// errs.ErrTruncatedBuffer or errs.ErrInvalidUTF8.
func (d *Decoder) Strings() ([]string, error) {
	n := d.NumEntries()
	c := d.stringCursor()
	result := make([]string, 0, d.boundedCount(n, c.pos))

	for range n {
		s, next, err := encoding.ReadLenString(d.engine, d.data, c.pos, d.cfg.validateUTF8)
		if err != nil {
			return nil, errs.NewFormatError(opStrings, c.pos, err)
		}
		result = append(result, s)
		c.pos = next
	}

	return result, nil
}

// StringsSeq returns an iterator over (index, resource string) pairs.
//
// The whole strings block is validated before the iterator is returned, so
// a malformed buffer is reported as an error and never yields partial data.
func (d *Decoder) StringsSeq() (iter.Seq2[int, string], error) {
	n := d.NumEntries()
	c := d.stringCursor()

	for range n {
		b, next, err := encoding.ReadLenBytes(d.engine, d.data, c.pos)
		if err != nil {
			return nil, errs.NewFormatError(opStrings, c.pos, err)
		}
		if d.cfg.validateUTF8 && !utf8.Valid(b) {
			return nil, errs.NewFormatError(opStrings, c.pos, errs.ErrInvalidUTF8)
		}
		c.pos = next
	}

	return func(yield func(int, string) bool) {
		c := d.stringCursor()
		for i := range n {
			s, next, _ := encoding.ReadLenString(d.engine, d.data, c.pos, false)
			c.pos = next

			if !yield(i, s) {
				return
			}
		}
	}, nil
}

// All decodes every entry, pairing embedding i with resource string i.
//
// Returns the first error of Embeddings or Strings; no partial result is
// returned on failure.
func (d *Decoder) All() ([]Entry, error) {
	embeddings, err := d.Embeddings()
	if err != nil {
		return nil, err
	}

	resources, err := d.Strings()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(embeddings))
	for i := range entries {
		entries[i] = Entry{
			Embedding:      embeddings[i],
			ResourceString: resources[i],
		}
	}

	return entries, nil
}

// EncodedSize walks the string length prefixes and returns the number of
// bytes the container occupies. It is len(Bytes()) for a well-formed buffer
// without trailing data.
func (d *Decoder) EncodedSize() (int, error) {
	end, err := encoding.SkipLenStrings(d.engine, d.data, d.stringCursor().pos, d.NumEntries())
	if err != nil {
		return 0, errs.NewFormatError(opSize, end, err)
	}

	return end, nil
}

// embeddingBlock returns a bounds-checked decoder over the embeddings block.
func (d *Decoder) embeddingBlock() (*encoding.Float32BlockDecoder, error) {
	n := d.NumEntries()

	// Zero-width embeddings occupy no bytes, so the block check alone would
	// accept any entry count. Require room for the string prefixes instead.
	if d.header.EmbeddingSize == 0 && n > 0 {
		if minSize, ok := d.header.MinEncodedSize(); !ok || len(d.data) < minSize {
			return nil, errs.NewFormatError(opEmbeddings, d.stringsOffset, errs.ErrTruncatedBuffer)
		}
	}

	block, err := encoding.NewFloat32BlockDecoder(d.engine, d.data[section.HeaderSize:], n, d.EmbeddingSize())
	if err != nil {
		return nil, errs.NewFormatError(opEmbeddings, section.HeaderSize, err)
	}

	return block, nil
}

// boundedCount caps an allocation hint for n string records starting at
// offset by the number of length prefixes the remaining bytes can hold.
func (d *Decoder) boundedCount(n, offset int) int {
	remaining := len(d.data) - offset
	if remaining <= 0 {
		return 0
	}

	return min(n, remaining/section.LengthPrefixSize)
}
