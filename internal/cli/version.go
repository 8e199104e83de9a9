package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show eri version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Version:    %s\n", version)
			fmt.Fprintf(w, "Commit:     %s\n", emptyAsNA(commit))
			fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())

			return nil
		},
	}
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}

	return s
}
