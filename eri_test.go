package eri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eri/blob"
	"github.com/arloliu/eri/errs"
)

func TestEncodeDecode(t *testing.T) {
	entries := []Entry{
		{Embedding: []float32{1.1, 2.2, 3.3}, ResourceString: "Hello"},
		{Embedding: []float32{4.4, 5.5, 6.6}, ResourceString: "World"},
	}

	data, err := Encode(entries, 3)
	require.NoError(t, err)
	require.Len(t, data, 53)

	decoder, err := NewDecoder(data, blob.WithStrictLength())
	require.NoError(t, err)

	got, err := decoder.All()
	require.NoError(t, err)
	require.Equal(t, entries, got)
}

func TestNewEncoder(t *testing.T) {
	encoder, err := NewEncoder(2, blob.WithUTF8Check())
	require.NoError(t, err)

	require.NoError(t, encoder.Add([]float32{0.5, -0.5}, "s3://bucket/a.txt"))
	require.ErrorIs(t, encoder.Add([]float32{1}, "short"), errs.ErrEmbeddingLengthMismatch)

	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 1, decoder.NumEntries())
}

func TestNewDecoder_InvalidSignature(t *testing.T) {
	_, err := NewDecoder([]byte("ERX\x00\x00\x00\x00\x00\x00\x00\x00"))
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
}

func TestResourceID(t *testing.T) {
	require.Equal(t, ResourceID("Hello"), ResourceID("Hello"))
	require.NotEqual(t, ResourceID("Hello"), ResourceID("World"))
}
