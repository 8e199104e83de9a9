package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/eri/blob"
	"github.com/arloliu/eri/errs"
)

const helloWorldYAML = `embedding_size: 3
entries:
  - embedding: [1.1, 2.2, 3.3]
    resource: Hello
  - embedding: [4.4, 5.5, 6.6]
    resource: World
`

// runCLI executes the root command with args and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

// writeFile writes content into a fresh temp dir and returns its path.
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func TestEncodeCommand(t *testing.T) {
	input := writeFile(t, "entries.yaml", []byte(helloWorldYAML))
	output := filepath.Join(filepath.Dir(input), "out.eri")

	out, err := runCLI(t, "encode", input, "-o", output)
	require.NoError(t, err)
	require.Contains(t, out, "wrote 2 entries (53 bytes)")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	expected, err := blob.Encode([]blob.Entry{
		{Embedding: []float32{1.1, 2.2, 3.3}, ResourceString: "Hello"},
		{Embedding: []float32{4.4, 5.5, 6.6}, ResourceString: "World"},
	}, 3)
	require.NoError(t, err)
	require.Equal(t, expected, data)
}

func TestEncodeCommand_DefaultOutputAndJSON(t *testing.T) {
	input := writeFile(t, "entries.json", []byte(`{"entries": [{"embedding": [0.5, 1.5], "resource": "a"}]}`))

	_, err := runCLI(t, "encode", input)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(filepath.Dir(input), "entries.eri"))
	require.NoError(t, err)

	decoder, err := blob.NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 2, decoder.EmbeddingSize())
	require.Equal(t, 1, decoder.NumEntries())
}

func TestEncodeCommand_Errors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		input := writeFile(t, "bad.yaml", []byte("embedding_size: 2\nentries:\n  - embedding: [1]\n    resource: x\n"))

		_, err := runCLI(t, "encode", input)
		require.ErrorIs(t, err, errs.ErrEmbeddingLengthMismatch)
	})

	t.Run("malformed input", func(t *testing.T) {
		input := writeFile(t, "bad.yaml", []byte("entries: [unclosed"))

		_, err := runCLI(t, "encode", input)
		require.Error(t, err)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := runCLI(t, "encode", filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestInspectCommand(t *testing.T) {
	input := writeFile(t, "entries.yaml", []byte(helloWorldYAML))
	output := filepath.Join(filepath.Dir(input), "index.eri")

	_, err := runCLI(t, "encode", input, "-o", output)
	require.NoError(t, err)

	out, err := runCLI(t, "inspect", output)
	require.NoError(t, err)
	require.Contains(t, out, "=== Header ===")
	require.Contains(t, out, "entries:")
	require.Contains(t, out, "[11, 35) 24 bytes")
	require.Contains(t, out, "[35, 53) 18 bytes")
	require.Contains(t, out, "file length matches encoded size")
}

func TestInspectCommand_TrailingAndTruncated(t *testing.T) {
	data, err := blob.Encode([]blob.Entry{{Embedding: []float32{1}, ResourceString: "x"}}, 1)
	require.NoError(t, err)

	padded := writeFile(t, "padded.eri", append(append([]byte(nil), data...), 0, 0, 0))
	out, err := runCLI(t, "inspect", padded)
	require.NoError(t, err)
	require.Contains(t, out, "3 trailing bytes")

	truncated := writeFile(t, "truncated.eri", data[:len(data)-1])
	out, err = runCLI(t, "inspect", truncated)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
	require.Contains(t, out, "✗")

	bad := writeFile(t, "bad.eri", []byte("NOPE-NOT-ERI"))
	_, err = runCLI(t, "inspect", bad)
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
}

func TestVerifyCommand(t *testing.T) {
	data, err := blob.Encode([]blob.Entry{
		{Embedding: []float32{1, 2}, ResourceString: "a"},
		{Embedding: []float32{3, 4}, ResourceString: "b"},
	}, 2)
	require.NoError(t, err)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.eri")
	padded := filepath.Join(dir, "padded.eri")
	require.NoError(t, os.WriteFile(good, data, 0o644))
	require.NoError(t, os.WriteFile(padded, append(append([]byte(nil), data...), 0xFF), 0o644))

	t.Run("all valid", func(t *testing.T) {
		out, err := runCLI(t, "verify", "-j", "2", good, good)
		require.NoError(t, err)
		require.Contains(t, out, "good.eri: 2 entries")
	})

	t.Run("trailing data fails", func(t *testing.T) {
		out, err := runCLI(t, "verify", good, padded)
		require.Error(t, err)
		require.Contains(t, err.Error(), "1 of 2 files failed")
		require.Contains(t, out, errs.ErrTrailingData.Error())
		require.Less(t, strings.Index(out, "good.eri"), strings.Index(out, "padded.eri"))
	})

	t.Run("invalid jobs", func(t *testing.T) {
		_, err := runCLI(t, "verify", "-j", "0", good)
		require.Error(t, err)
	})
}

func TestDumpCommand(t *testing.T) {
	input := writeFile(t, "entries.yaml", []byte(helloWorldYAML))
	output := filepath.Join(filepath.Dir(input), "index.eri")

	_, err := runCLI(t, "encode", input, "-o", output)
	require.NoError(t, err)

	t.Run("yaml round trip", func(t *testing.T) {
		out, err := runCLI(t, "dump", output)
		require.NoError(t, err)

		var doc document
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		require.Equal(t, 3, doc.embeddingSize())
		require.Len(t, doc.Entries, 2)
		require.Equal(t, "World", *doc.Entries[1].Resource)
		require.InDeltaSlice(t, []float32{4.4, 5.5, 6.6}, doc.Entries[1].Embedding, 1e-4)
	})

	t.Run("json strings only", func(t *testing.T) {
		out, err := runCLI(t, "dump", output, "--format", "json", "--only", "strings")
		require.NoError(t, err)

		var doc document
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Len(t, doc.Entries, 2)
		require.Equal(t, "Hello", *doc.Entries[0].Resource)
		require.Nil(t, doc.Entries[0].Embedding)
	})

	t.Run("embeddings only", func(t *testing.T) {
		out, err := runCLI(t, "dump", output, "--format", "json", "--only", "embeddings")
		require.NoError(t, err)

		var doc document
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		require.Nil(t, doc.Entries[0].Resource)
		require.InDeltaSlice(t, []float32{1.1, 2.2, 3.3}, doc.Entries[0].Embedding, 1e-4)
	})

	t.Run("invalid flags", func(t *testing.T) {
		_, err := runCLI(t, "dump", output, "--format", "xml")
		require.Error(t, err)

		_, err = runCLI(t, "dump", output, "--only", "tags")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:    dev")
	require.Contains(t, out, "Commit:     n/a")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := runCLI(t, "--log-level", "loud", "version")
	require.Error(t, err)
}
