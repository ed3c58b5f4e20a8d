// Package cli provides the cptac command line interface: fixture
// introspection and join execution over YAML-loaded datasets.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/PayneLab/cptac/internal/dataset"
	"github.com/PayneLab/cptac/internal/harness"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Fixture string
	Verbose bool
}

// NewRootCommand creates the root command for the cptac CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cptac",
		Short: "cptac - join heterogeneous biological measurement tables",
		Long: "Loads a dataset fixture and runs the join/reindex core over it:\n" +
			"selecting columns, harmonizing multi-level column indices, and\n" +
			"joining omics, metadata, and mutation data by sample.",
	}

	cmd.PersistentFlags().StringVar(&opts.Fixture, "fixture", "", "path to a YAML dataset fixture (required)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewJoinCommand(opts))

	return cmd
}

// loadDataset builds the dataset from the --fixture flag.
func loadDataset(opts *RootOptions) (*dataset.Dataset, error) {
	fixture, err := harness.Load(opts.Fixture)
	if err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return fixture.Build(dataset.WithLogger(logger))
}
