package encoding

import (
	"unicode/utf8"

	"github.com/arloliu/eri/endian"
	"github.com/arloliu/eri/errs"
	"github.com/arloliu/eri/section"
)

// LenStringSize returns the encoded size of s: a 4-byte length prefix plus its bytes.
func LenStringSize(s string) int {
	return section.LengthPrefixSize + len(s)
}

// PutLenString writes s into dst as a uint32 length prefix followed by the
// raw string bytes and returns the number of bytes written.
//
// dst must have room for LenStringSize(s) bytes. The caller is responsible for
// rejecting strings longer than section.MaxCount.
func PutLenString(engine endian.EndianEngine, dst []byte, s string) int {
	engine.PutUint32(dst[:section.LengthPrefixSize], uint32(len(s))) //nolint:gosec
	n := copy(dst[section.LengthPrefixSize:], s)

	return section.LengthPrefixSize + n
}

// ReadLenBytes reads the length-prefixed value starting at offset.
//
// It returns a sub-slice of data (no copy) and the offset just past the value.
// Returns errs.ErrTruncatedBuffer if either the prefix or the value does not
// fit in data.
func ReadLenBytes(engine endian.EndianEngine, data []byte, offset int) ([]byte, int, error) {
	if offset < 0 || offset > len(data)-section.LengthPrefixSize {
		return nil, offset, errs.ErrTruncatedBuffer
	}

	length := uint64(engine.Uint32(data[offset : offset+section.LengthPrefixSize]))
	start := offset + section.LengthPrefixSize

	if length > uint64(len(data)-start) {
		return nil, offset, errs.ErrTruncatedBuffer
	}

	end := start + int(length)

	return data[start:end:end], end, nil
}

// ReadLenString reads the length-prefixed string starting at offset and
// returns it together with the offset just past it.
//
// When validateUTF8 is true, errs.ErrInvalidUTF8 is returned for byte
// sequences that are not valid UTF-8; otherwise the bytes are returned as-is.
func ReadLenString(engine endian.EndianEngine, data []byte, offset int, validateUTF8 bool) (string, int, error) {
	b, next, err := ReadLenBytes(engine, data, offset)
	if err != nil {
		return "", offset, err
	}

	if validateUTF8 && !utf8.Valid(b) {
		return "", offset, errs.ErrInvalidUTF8
	}

	return string(b), next, nil
}

// SkipLenStrings walks count length-prefixed values starting at offset
// without decoding them and returns the offset just past the last one.
//
// On failure the returned offset is the start of the value that did not fit.
func SkipLenStrings(engine endian.EndianEngine, data []byte, offset, count int) (int, error) {
	for i := 0; i < count; i++ {
		_, next, err := ReadLenBytes(engine, data, offset)
		if err != nil {
			return offset, err
		}
		offset = next
	}

	return offset, nil
}
