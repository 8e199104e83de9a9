// Package lookup provides the hash index used to find entries by resource string.
package lookup

// Index maps resource string hashes to the entry indices that carry them.
//
// An Index never stores the strings themselves. A bucket can hold several
// entries, either because the same resource string occurs more than once or
// because distinct strings share a hash; callers resolve candidates by
// comparing the actual bytes.
//
// Index is not safe for concurrent mutation. Once built it may be read
// concurrently.
type Index struct {
	buckets map[uint64][]int
	count   int
}

// NewIndex creates an empty index sized for capacity entries.
func NewIndex(capacity int) *Index {
	if capacity < 0 {
		capacity = 0
	}

	return &Index{
		buckets: make(map[uint64][]int, capacity),
	}
}

// Add records that entry carries a resource string hashing to id.
// Entries must be added in ascending order for Candidates to return them sorted.
func (x *Index) Add(id uint64, entry int) {
	x.buckets[id] = append(x.buckets[id], entry)
	x.count++
}

// Candidates returns the entries recorded under id, in insertion order.
// The returned slice must not be modified.
func (x *Index) Candidates(id uint64) []int {
	return x.buckets[id]
}

// Len returns the number of entries added to the index.
func (x *Index) Len() int {
	return x.count
}

// Buckets returns the number of distinct hashes in the index.
func (x *Index) Buckets() int {
	return len(x.buckets)
}

// Reset clears the index, keeping the allocated map for reuse.
func (x *Index) Reset() {
	clear(x.buckets)
	x.count = 0
}
