package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/eri/section"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the header and block layout of an ERI file",
		Long: `Display the header fields of an ERI file, the byte range of each block,
and whether the file length matches the size encoded by its header.

Example:
  eri inspect index.eri`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	data, decoder, err := openContainer(args[0])
	if err != nil {
		return err
	}

	header := decoder.Header()
	stringsOffset := decoder.StringsOffset()

	printSection(w, "Header")
	printField(w, "signature", section.Signature)
	printField(w, "entries", header.NumEntries)
	printField(w, "embedding size", header.EmbeddingSize)

	printSection(w, "Layout")
	printField(w, "header", fmt.Sprintf("[0, %d) %d bytes", section.HeaderSize, section.HeaderSize))
	printField(w, "embeddings", fmt.Sprintf("[%d, %d) %d bytes", section.HeaderSize, stringsOffset, stringsOffset-section.HeaderSize))

	size, sizeErr := decoder.EncodedSize()
	if sizeErr == nil {
		printField(w, "strings", fmt.Sprintf("[%d, %d) %d bytes", stringsOffset, size, size-stringsOffset))
	}
	printField(w, "file size", fmt.Sprintf("%d bytes", len(data)))

	printSection(w, "Checks")

	if sizeErr != nil {
		printErr(w, sizeErr.Error())
		return sizeErr
	}

	if size == len(data) {
		printOK(w, "file length matches encoded size")
	} else {
		printWarn(w, fmt.Sprintf("%d trailing bytes after strings block", len(data)-size))
	}

	if _, err := decoder.Strings(); err != nil {
		printErr(w, err.Error())
		return err
	}
	printOK(w, "all resource strings are valid UTF-8")

	return nil
}
