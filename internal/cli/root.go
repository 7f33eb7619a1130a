// Package cli implements the cqltour command line interface.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose    bool
	configPath string
	hosts      []string
	keyspace   string
}

// Execute runs the cqltour CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	opts := new(rootOptions)

	root := &cobra.Command{
		Use:          "cqltour",
		Short:        "A guided tour of Cassandra basics",
		Long:         "cqltour runs guided CQL exercises against a live Cassandra cluster and renders query results as ASCII tables for inspection.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringSliceVar(&opts.hosts, "hosts", nil, "Cassandra hosts, overrides the config file")
	root.PersistentFlags().StringVar(&opts.keyspace, "keyspace", "", "keyspace to use, overrides the config file")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newExecCmd(opts))

	return root.ExecuteContext(ctx)
}
