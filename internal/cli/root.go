// Package cli implements the eri command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/eri/internal/logger"
)

// NewRootCommand builds the eri command tree.
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "eri",
		Short:        "Inspect, dump and build ERI embedding containers",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `eri works with ERI files: compact binary containers pairing float32
embeddings with the resource strings they were computed from.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := logger.New(cmd.ErrOrStderr(), logLevel)
			return err
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newInspectCommand(),
		newDumpCommand(),
		newEncodeCommand(),
		newVerifyCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute is called by main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
