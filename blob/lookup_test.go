package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eri/errs"
)

func TestDecoder_Lookup(t *testing.T) {
	entries := []Entry{
		{Embedding: []float32{1}, ResourceString: "doc://a"},
		{Embedding: []float32{2}, ResourceString: "doc://b"},
		{Embedding: []float32{3}, ResourceString: "doc://a"},
		{Embedding: []float32{4}, ResourceString: ""},
	}

	data, err := Encode(entries, 1)
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	tests := []struct {
		resource string
		expected []int
	}{
		{"doc://a", []int{0, 2}},
		{"doc://b", []int{1}},
		{"", []int{3}},
		{"doc://c", []int{}},
		{"doc://", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			got, err := decoder.Lookup(tt.resource)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	found, err := decoder.Contains("doc://b")
	require.NoError(t, err)
	require.True(t, found)

	found, err = decoder.Contains("doc://z")
	require.NoError(t, err)
	require.False(t, found)
}

func TestDecoder_Lookup_MatchesEmbedding(t *testing.T) {
	decoder, err := NewDecoder(encodeHelloWorld(t))
	require.NoError(t, err)

	idx, err := decoder.Lookup("World")
	require.NoError(t, err)
	require.Equal(t, []int{1}, idx)

	vec, err := decoder.Embedding(idx[0])
	require.NoError(t, err)
	requireEmbeddingsClose(t, [][]float32{{4.4, 5.5, 6.6}}, [][]float32{vec})
}

func TestDecoder_Lookup_Truncated(t *testing.T) {
	decoder, err := NewDecoder(encodeHelloWorld(t)[:48])
	require.NoError(t, err)

	_, err = decoder.Lookup("Hello")
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

	// The failure is sticky.
	_, err = decoder.Contains("Hello")
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}
