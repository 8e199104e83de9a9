package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/eri/blob"
)

type encodeOptions struct {
	output    string
	utf8Check bool
}

func newEncodeCommand() *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode <input.yaml|input.json>",
		Short: "Build an ERI file from a YAML or JSON document",
		Long: `Build an ERI file from a document of the form:

  embedding_size: 3          # optional, defaults to the first entry's width
  entries:
    - embedding: [1.1, 2.2, 3.3]
      resource: Hello
    - embedding: [4.4, 5.5, 6.6]
      resource: World

JSON input with the same keys is accepted as well.

Example:
  eri encode entries.yaml -o index.eri`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .eri extension)")
	cmd.Flags().BoolVar(&opts.utf8Check, "utf8-check", true, "reject resource strings that are not valid UTF-8")

	return cmd
}

func runEncode(cmd *cobra.Command, input string, opts *encodeOptions) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	// JSON is a subset of YAML, so one decoder serves both formats.
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	var encOpts []blob.EncoderOption
	if opts.utf8Check {
		encOpts = append(encOpts, blob.WithUTF8Check())
	}
	encOpts = append(encOpts, blob.WithInitialCapacity(len(doc.Entries)))

	encoder, err := blob.NewEncoder(doc.embeddingSize(), encOpts...)
	if err != nil {
		return err
	}

	for _, e := range doc.Entries {
		resource := ""
		if e.Resource != nil {
			resource = *e.Resource
		}

		if err := encoder.Add(e.Embedding, resource); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
	}

	data, err := encoder.Finish()
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".eri"
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}

	slog.Info("wrote container", "path", output, "bytes", len(data))
	printOK(cmd.OutOrStdout(), fmt.Sprintf("wrote %d entries (%d bytes) to %s", len(doc.Entries), len(data), output))

	return nil
}
