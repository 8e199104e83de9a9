package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arloliu/eri/blob"
)

// document is the YAML/JSON form of a container, read by encode and written by dump.
type document struct {
	EmbeddingSize *int            `yaml:"embedding_size,omitempty" json:"embedding_size,omitempty"`
	Entries       []documentEntry `yaml:"entries" json:"entries"`
}

type documentEntry struct {
	Embedding []float32 `yaml:"embedding,omitempty,flow" json:"embedding,omitempty"`
	Resource  *string   `yaml:"resource,omitempty" json:"resource,omitempty"`
}

// embeddingSize returns the declared width, or the width of the first entry
// when the document does not declare one.
func (d *document) embeddingSize() int {
	if d.EmbeddingSize != nil {
		return *d.EmbeddingSize
	}

	if len(d.Entries) > 0 {
		return len(d.Entries[0].Embedding)
	}

	return 0
}

// openContainer reads path and returns its bytes and a decoder over them.
func openContainer(path string, opts ...blob.DecoderOption) ([]byte, *blob.Decoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	decoder, err := blob.NewDecoder(data, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("opened container",
		"path", path,
		"bytes", len(data),
		"entries", decoder.NumEntries(),
		"embedding_size", decoder.EmbeddingSize(),
	)

	return data, decoder, nil
}
