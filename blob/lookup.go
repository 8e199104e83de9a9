package blob

import (
	"github.com/arloliu/eri/encoding"
	"github.com/arloliu/eri/errs"
	"github.com/arloliu/eri/internal/hash"
	"github.com/arloliu/eri/internal/lookup"
)

// Lookup returns the indices of all entries whose resource string equals
// resource, in ascending order. It returns an empty slice when there is no match.
//
// The first call walks the strings block once and builds an xxHash64 index
// over it; later calls are O(1) plus one byte comparison per candidate.
// Building the index is safe under concurrent calls.
func (d *Decoder) Lookup(resource string) ([]int, error) {
	d.indexOnce.Do(d.buildIndex)
	if d.indexErr != nil {
		return nil, d.indexErr
	}

	candidates := d.index.Candidates(hash.ID(resource))
	matches := make([]int, 0, len(candidates))

	for _, entry := range candidates {
		b, _, err := encoding.ReadLenBytes(d.engine, d.data, d.offsets[entry])
		if err != nil {
			return nil, errs.NewFormatError(opLookup, d.offsets[entry], err)
		}

		if string(b) == resource {
			matches = append(matches, entry)
		}
	}

	return matches, nil
}

// Contains reports whether any entry carries the given resource string.
func (d *Decoder) Contains(resource string) (bool, error) {
	matches, err := d.Lookup(resource)
	if err != nil {
		return false, err
	}

	return len(matches) > 0, nil
}

// buildIndex hashes every resource string without allocating them.
func (d *Decoder) buildIndex() {
	n := d.NumEntries()
	c := d.stringCursor()

	index := lookup.NewIndex(d.boundedCount(n, c.pos))
	offsets := make([]int, 0, d.boundedCount(n, c.pos))

	for i := range n {
		b, next, err := encoding.ReadLenBytes(d.engine, d.data, c.pos)
		if err != nil {
			d.indexErr = errs.NewFormatError(opLookup, c.pos, err)
			return
		}

		index.Add(hash.IDBytes(b), i)
		offsets = append(offsets, c.pos)
		c.pos = next
	}

	d.index = index
	d.offsets = offsets
}
