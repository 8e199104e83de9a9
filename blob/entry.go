package blob

// Entry is one record of an ERI container: an embedding and the resource
// string it belongs to.
type Entry struct {
	// Embedding holds exactly EmbeddingSize float32 components.
	Embedding []float32
	// ResourceString identifies the resource the embedding was computed from.
	ResourceString string
}
