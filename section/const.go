package section

import "math"

// Signature is the 3-byte magic value at offset 0 of every ERI buffer.
const Signature = "ERI"

// Fixed header layout, all integers little-endian.
const (
	SignatureOffset     = 0 // byte offset of the signature
	NumEntriesOffset    = 3 // byte offset of numEntries (uint32)
	EmbeddingSizeOffset = 7 // byte offset of embeddingSize (uint32)

	SignatureSize    = 3  // signature length in bytes
	HeaderSize       = 11 // fixed header size in bytes
	FloatSize        = 4  // size of one embedding component (float32)
	LengthPrefixSize = 4  // size of a resource string length prefix (uint32)

	MaxCount = math.MaxUint32 // upper bound for numEntries, embeddingSize and string lengths
)
