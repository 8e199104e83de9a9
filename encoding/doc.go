// Package encoding provides the block codecs used by the ERI container.
//
// Two codecs are defined, one per block of the format:
//
//   - Float32 block: a dense run of fixed-width float32 vectors, written
//     back to back with no separators. PutFloat32s writes it and
//     Float32BlockDecoder gives O(1) random access and sequential iteration.
//   - Length-prefixed strings: each value is a uint32 byte length followed by
//     that many bytes. PutLenString writes one value and ReadLenString /
//     ReadLenBytes read one value at a given offset.
//
// All readers are bounds-checked against the input slice and report
// errs.ErrTruncatedBuffer instead of panicking. They never retain or modify
// the input; decoded vectors are copied out, strings are allocated.
//
// Most users should use the blob package, which combines these codecs with
// header parsing and offset arithmetic.
package encoding
