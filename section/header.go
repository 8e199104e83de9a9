package section

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/eri/endian"
	"github.com/arloliu/eri/errs"
)

// Header is the fixed-size ERI header.
type Header struct {
	// NumEntries is the number of entries in the container.
	NumEntries uint32 // 4 bytes, offset 3-6
	// EmbeddingSize is the number of float32 components of every embedding.
	EmbeddingSize uint32 // 4 bytes, offset 7-10
}

// NewHeader creates a Header for numEntries entries of embeddingSize floats.
//
// Returns errs.ErrInvalidEmbeddingSize if embeddingSize is negative or does not
// fit in uint32, and errs.ErrTooManyEntries if numEntries does not fit in uint32.
func NewHeader(numEntries, embeddingSize int) (Header, error) {
	if embeddingSize < 0 || uint64(embeddingSize) > MaxCount {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrInvalidEmbeddingSize, embeddingSize)
	}

	if numEntries < 0 || uint64(numEntries) > MaxCount {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrTooManyEntries, numEntries)
	}

	return Header{
		NumEntries:    uint32(numEntries),    //nolint:gosec
		EmbeddingSize: uint32(embeddingSize), //nolint:gosec
	}, nil
}

// Parse parses the header from the beginning of data.
//
// data may be longer than HeaderSize; only the first HeaderSize bytes are read.
// Returns errs.ErrBufferTooShort or errs.ErrInvalidSignature.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrBufferTooShort
	}

	if string(data[SignatureOffset:SignatureOffset+SignatureSize]) != Signature {
		return errs.ErrInvalidSignature
	}

	engine := endian.GetLittleEndianEngine()
	h.NumEntries = engine.Uint32(data[NumEntriesOffset:EmbeddingSizeOffset])
	h.EmbeddingSize = engine.Uint32(data[EmbeddingSizeOffset:HeaderSize])

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b and returns the extended slice.
func (h Header) AppendTo(b []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	b = append(b, Signature...)
	b = engine.AppendUint32(b, h.NumEntries)
	b = engine.AppendUint32(b, h.EmbeddingSize)

	return b
}

// EmbeddingBytes returns the encoded size of a single embedding.
func (h Header) EmbeddingBytes() int {
	return int(h.EmbeddingSize) * FloatSize
}

// EmbeddingsBlockSize returns NumEntries × EmbeddingSize × 4.
//
// The second result is false when the block size cannot be addressed by an
// int, in which case no in-memory buffer can hold the container.
func (h Header) EmbeddingsBlockSize() (int, bool) {
	hi, lo := bits.Mul64(uint64(h.NumEntries), uint64(h.EmbeddingSize)*FloatSize)
	if hi != 0 || lo > uint64(math.MaxInt-HeaderSize) {
		return 0, false
	}

	return int(lo), true
}

// StringsOffset returns the byte offset where the strings block starts.
//
// It is computed from the header alone; the embeddings are never decoded.
func (h Header) StringsOffset() (int, bool) {
	size, ok := h.EmbeddingsBlockSize()
	if !ok {
		return 0, false
	}

	return HeaderSize + size, true
}

// MinEncodedSize returns the smallest buffer size able to hold the container,
// which is the strings offset plus one length prefix per entry.
func (h Header) MinEncodedSize() (int, bool) {
	offset, ok := h.StringsOffset()
	if !ok {
		return 0, false
	}

	prefixes := uint64(h.NumEntries) * LengthPrefixSize
	if uint64(offset) > math.MaxInt-prefixes {
		return 0, false
	}

	return offset + int(prefixes), true
}

// String implements fmt.Stringer.
func (h Header) String() string {
	return fmt.Sprintf("ERI{entries=%d, embeddingSize=%d}", h.NumEntries, h.EmbeddingSize)
}
