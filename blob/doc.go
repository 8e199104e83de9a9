// Package blob encodes and decodes ERI containers.
//
// An ERI container stores a fixed number of entries, each pairing a float32
// embedding with a UTF-8 resource string. All embeddings share one width.
// The binary layout is described in the section package.
//
// # Encoding
//
// Encode converts a slice of entries in one call:
//
//	data, err := blob.Encode([]blob.Entry{
//	    {Embedding: []float32{1.1, 2.2, 3.3}, ResourceString: "Hello"},
//	    {Embedding: []float32{4.4, 5.5, 6.6}, ResourceString: "World"},
//	}, 3)
//
// Encoder builds the same buffer incrementally:
//
//	encoder, _ := blob.NewEncoder(3)
//	_ = encoder.Add([]float32{1.1, 2.2, 3.3}, "Hello")
//	data, err := encoder.Finish()
//
// Both compute the exact output size and allocate it once.
//
// # Decoding
//
// NewDecoder validates the header and borrows the buffer. Each extraction
// mode reads only the block it needs:
//
//	decoder, err := blob.NewDecoder(data)
//	vectors, err := decoder.Embeddings() // strings block untouched
//	names, err := decoder.Strings()      // embeddings skipped, not decoded
//	entries, err := decoder.All()        // both, zipped by index
//
// Extraction does not keep a read cursor between calls, so the operations can
// be called in any order, repeatedly, and from several goroutines.
//
// Entries can also be found by resource string:
//
//	idx, err := decoder.Lookup("Hello") // []int{0}
//
// # Errors
//
// Decoding failures are returned as *errs.FormatError values wrapping one of
// errs.ErrBufferTooShort, errs.ErrInvalidSignature, errs.ErrTruncatedBuffer,
// errs.ErrInvalidUTF8 or errs.ErrTrailingData. A malformed buffer never
// yields partial or zero-filled data.
package blob
