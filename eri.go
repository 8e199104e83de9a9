// Package eri provides a compact binary container for embeddings and the
// resource identifiers they belong to.
//
// An ERI buffer holds a fixed number of entries. Each entry pairs a float32
// vector (all vectors share one width) with a UTF-8 resource string. Vectors
// and strings are stored in two separate blocks, so a reader can extract
// only the vectors, only the strings, or both, straight from the buffer.
//
// # Basic Usage
//
// Encoding:
//
//	data, err := eri.Encode([]eri.Entry{
//	    {Embedding: []float32{1.1, 2.2, 3.3}, ResourceString: "Hello"},
//	    {Embedding: []float32{4.4, 5.5, 6.6}, ResourceString: "World"},
//	}, 3)
//
// Decoding:
//
//	decoder, err := eri.NewDecoder(data)
//	vectors, err := decoder.Embeddings()
//	names, err := decoder.Strings()
//	entries, err := decoder.All()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob
// package. The section package documents the binary layout, the encoding
// package holds the block codecs, and errs defines the sentinel errors.
package eri

import (
	"github.com/arloliu/eri/blob"
	"github.com/arloliu/eri/internal/hash"
)

// Entry is one (embedding, resource string) record.
type Entry = blob.Entry

// Decoder reads an ERI buffer. See blob.Decoder.
type Decoder = blob.Decoder

// Encoder builds an ERI buffer incrementally. See blob.Encoder.
type Encoder = blob.Encoder

// Encode encodes entries into a new ERI buffer.
//
// Every entry must have exactly embeddingSize embedding components.
//
// Example:
//
//	data, err := eri.Encode(entries, 768, blob.WithUTF8Check())
func Encode(entries []Entry, embeddingSize int, opts ...blob.EncoderOption) ([]byte, error) {
	return blob.Encode(entries, embeddingSize, opts...)
}

// NewEncoder creates an incremental encoder for embeddings of embeddingSize components.
func NewEncoder(embeddingSize int, opts ...blob.EncoderOption) (*Encoder, error) {
	return blob.NewEncoder(embeddingSize, opts...)
}

// NewDecoder validates the header of data and returns a decoder over it.
//
// The decoder borrows data without copying it.
//
// Example:
//
//	decoder, err := eri.NewDecoder(data, blob.WithStrictLength())
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDecoder(data []byte, opts ...blob.DecoderOption) (*Decoder, error) {
	return blob.NewDecoder(data, opts...)
}

// ResourceID returns the 64-bit xxHash of a resource string, the key used by
// Decoder.Lookup. It is exposed so callers can shard or deduplicate resource
// strings consistently with the decoder's index.
func ResourceID(resource string) uint64 {
	return hash.ID(resource)
}
