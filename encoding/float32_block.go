package encoding

import (
	"iter"
	"unsafe"

	"github.com/arloliu/eri/endian"
	"github.com/arloliu/eri/errs"
	"github.com/arloliu/eri/section"
)

// Float32BlockSize returns the encoded size of count vectors of width floats.
func Float32BlockSize(count, width int) int {
	return count * width * section.FloatSize
}

// PutFloat32s writes values into dst as consecutive float32 values and
// returns the number of bytes written.
//
// dst must have room for len(values)*4 bytes.
func PutFloat32s(engine endian.EndianEngine, dst []byte, values []float32) int {
	n := len(values) * section.FloatSize
	if n == 0 {
		return 0
	}

	_ = dst[n-1] // bounds check hint

	if endian.CompareNativeEndian(engine) {
		copy(dst[:n], unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), n))
		return n
	}

	for i, v := range values {
		endian.PutFloat32(engine, dst[i*section.FloatSize:], v)
	}

	return n
}

// DecodeFloat32s decodes len(dst) float32 values from the beginning of src.
//
// Returns errs.ErrTruncatedBuffer if src holds fewer than len(dst)*4 bytes.
func DecodeFloat32s(engine endian.EndianEngine, dst []float32, src []byte) error {
	n := len(dst) * section.FloatSize
	if len(src) < n {
		return errs.ErrTruncatedBuffer
	}

	if n == 0 {
		return nil
	}

	if endian.CompareNativeEndian(engine) {
		// Copy through the destination's memory; src carries no alignment guarantee.
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), n), src[:n])
		return nil
	}

	for i := range dst {
		dst[i] = endian.Float32(engine, src[i*section.FloatSize:])
	}

	return nil
}

// Float32BlockDecoder reads a block of count fixed-width float32 vectors.
//
// The decoder borrows the block bytes; it never copies or modifies them.
// Every vector it returns is a freshly allocated slice owned by the caller.
//
// Float32BlockDecoder is immutable after construction and safe for concurrent use.
type Float32BlockDecoder struct {
	data   []byte
	engine endian.EndianEngine
	count  int
	width  int
	stride int
}

// NewFloat32BlockDecoder creates a decoder over data for count vectors of width floats.
//
// Returns errs.ErrTruncatedBuffer if data is shorter than count*width*4 bytes.
// Extra bytes after the block are ignored.
func NewFloat32BlockDecoder(engine endian.EndianEngine, data []byte, count, width int) (*Float32BlockDecoder, error) {
	if count < 0 || width < 0 {
		return nil, errs.ErrTruncatedBuffer
	}

	stride := width * section.FloatSize
	if stride > 0 && count > len(data)/stride {
		return nil, errs.ErrTruncatedBuffer
	}

	return &Float32BlockDecoder{
		data:   data[:count*stride],
		engine: engine,
		count:  count,
		width:  width,
		stride: stride,
	}, nil
}

// Len returns the number of vectors in the block.
func (d *Float32BlockDecoder) Len() int {
	return d.count
}

// Width returns the number of floats per vector.
func (d *Float32BlockDecoder) Width() int {
	return d.width
}

// At decodes the vector at index i.
//
// Returns errs.ErrIndexOutOfRange if i is not in [0, Len()).
func (d *Float32BlockDecoder) At(i int) ([]float32, error) {
	if i < 0 || i >= d.count {
		return nil, errs.ErrIndexOutOfRange
	}

	vec := make([]float32, d.width)
	offset := i * d.stride
	// The block length was validated in the constructor.
	_ = DecodeFloat32s(d.engine, vec, d.data[offset:offset+d.stride])

	return vec, nil
}

// DecodeAll decodes every vector of the block.
//
// All vectors share one backing array, so the whole block costs two allocations.
func (d *Float32BlockDecoder) DecodeAll() [][]float32 {
	vectors := make([][]float32, d.count)
	if d.count == 0 {
		return vectors
	}

	backing := make([]float32, d.count*d.width)
	_ = DecodeFloat32s(d.engine, backing, d.data)

	for i := range vectors {
		vectors[i] = backing[i*d.width : (i+1)*d.width : (i+1)*d.width]
	}

	return vectors
}

// All returns an iterator over (index, vector) pairs in block order.
//
// Each yielded vector is a new slice owned by the caller.
func (d *Float32BlockDecoder) All() iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		for i := 0; i < d.count; i++ {
			vec := make([]float32, d.width)
			offset := i * d.stride
			_ = DecodeFloat32s(d.engine, vec, d.data[offset:offset+d.stride])

			if !yield(i, vec) {
				return
			}
		}
	}
}
