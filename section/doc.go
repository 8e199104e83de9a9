// Package section defines the low-level binary layout of the ERI container.
//
// An ERI buffer is a fixed 11-byte header followed by two blocks:
//
//	┌───────────────────────────────────────────────────────────┐
//	│ Header (11 bytes, fixed)                                  │
//	│  - Signature     (3 bytes): "ERI"                         │
//	│  - NumEntries    (4 bytes): uint32 LE                     │
//	│  - EmbeddingSize (4 bytes): uint32 LE                     │
//	├───────────────────────────────────────────────────────────┤
//	│ Embeddings block (NumEntries × EmbeddingSize × 4 bytes)   │
//	│  - entry 0 floats, entry 1 floats, ... (float32 LE)       │
//	├───────────────────────────────────────────────────────────┤
//	│ Strings block (variable)                                  │
//	│  - per entry: uint32 LE byte length, then UTF-8 bytes     │
//	└───────────────────────────────────────────────────────────┘
//
// There is no padding, trailer or checksum. The position of the strings
// block is fully determined by the header, so readers can jump directly to
// either block without decoding the other one.
//
// Header offset arithmetic is done in 64-bit and checked, since a hostile
// header can declare up to 2^32 entries of 2^32 floats each.
package section
