package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/eri/blob"
)

type verifyResult struct {
	path    string
	entries int
	err     error
}

func newVerifyCommand() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Fully decode one or more ERI files and report failures",
		Long: `Decode every embedding and resource string of each file with strict length
checking. Files are verified concurrently; results are printed in argument order.

Example:
  eri verify shards/*.eri`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, jobs)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files verified in parallel")

	return cmd
}

func runVerify(cmd *cobra.Command, paths []string, jobs int) error {
	if jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
	}

	results := make([]verifyResult, len(paths))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = verifyFile(path)
			return nil
		})
	}
	_ = g.Wait()

	w := cmd.OutOrStdout()
	printSection(w, "Verify")

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			printErr(w, r.err.Error())

			continue
		}
		printOK(w, fmt.Sprintf("%s: %d entries", r.path, r.entries))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, len(paths))
	}

	return nil
}

func verifyFile(path string) verifyResult {
	_, decoder, err := openContainer(path, blob.WithStrictLength())
	if err != nil {
		return verifyResult{path: path, err: err}
	}

	if _, err := decoder.All(); err != nil {
		return verifyResult{path: path, err: fmt.Errorf("%s: %w", path, err)}
	}

	slog.Debug("verified container", "path", path, "entries", decoder.NumEntries())

	return verifyResult{path: path, entries: decoder.NumEntries()}
}
