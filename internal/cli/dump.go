package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"

	onlyAll        = "all"
	onlyEmbeddings = "embeddings"
	onlyStrings    = "strings"
)

type dumpOptions struct {
	format string
	only   string
}

func newDumpCommand() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the entries of an ERI file as YAML or JSON",
		Long: `Decode an ERI file and print its entries.

With --only embeddings the strings block is never read; with --only strings
the embeddings block is skipped without being decoded.

The output of "dump --only all" can be fed back to "eri encode".

Example:
  eri dump index.eri
  eri dump index.eri --format json --only strings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", formatYAML, "output format (yaml, json)")
	cmd.Flags().StringVar(&opts.only, "only", onlyAll, "blocks to decode (all, embeddings, strings)")

	return cmd
}

func runDump(cmd *cobra.Command, path string, opts *dumpOptions) error {
	if opts.format != formatYAML && opts.format != formatJSON {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	_, decoder, err := openContainer(path)
	if err != nil {
		return err
	}

	size := decoder.EmbeddingSize()
	doc := document{
		EmbeddingSize: &size,
		Entries:       make([]documentEntry, decoder.NumEntries()),
	}

	switch opts.only {
	case onlyAll:
		entries, err := decoder.All()
		if err != nil {
			return err
		}
		for i, e := range entries {
			doc.Entries[i] = documentEntry{Embedding: e.Embedding, Resource: &e.ResourceString}
		}
	case onlyEmbeddings:
		embeddings, err := decoder.Embeddings()
		if err != nil {
			return err
		}
		for i, vec := range embeddings {
			doc.Entries[i].Embedding = vec
		}
	case onlyStrings:
		resources, err := decoder.Strings()
		if err != nil {
			return err
		}
		for i := range resources {
			doc.Entries[i].Resource = &resources[i]
		}
	default:
		return fmt.Errorf("unsupported block selection %q", opts.only)
	}

	slog.Debug("dumping container", "entries", len(doc.Entries), "format", opts.format, "only", opts.only)

	w := cmd.OutOrStdout()
	if opts.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
