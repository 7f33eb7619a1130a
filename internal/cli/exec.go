package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/cqltour/go-cqltour/cqltable"
	"github.com/cqltour/go-cqltour/texttable"
	"github.com/cqltour/go-cqltour/tour"
)

func newExecCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <script.cql>",
		Short: "Run the statements of a CQL script file",
		Long:  "exec runs every statement of the script in order. Result sets of SELECT statements are rendered as ASCII tables.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			statements, err := tour.LoadScript(ctx, fs.File(args[0]))
			if err != nil {
				return fmt.Errorf("loading script: %w", err)
			}
			if len(statements) == 0 {
				logger.Warn("script contains no statements", "file", args[0])
				return nil
			}

			cfg, err := opts.clientConfig()
			if err != nil {
				return err
			}
			client, err := cqltable.Connect(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connecting to Cassandra: %w", err)
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			writer := texttable.NewWriter()
			for _, stmt := range statements {
				logger.Debug("executing", "stmt", stmt)
				if !strings.HasPrefix(strings.ToUpper(strings.TrimSpace(stmt)), "SELECT") {
					if err := client.Exec(ctx, stmt); err != nil {
						return fmt.Errorf("executing %q: %w", stmt, err)
					}
					continue
				}
				view, err := cqltable.ScanRowsAsView(ctx, client.Query(ctx, stmt))
				if err != nil {
					return fmt.Errorf("executing %q: %w", stmt, err)
				}
				if err := writer.WriteView(ctx, out, view); err != nil {
					return err
				}
			}
			logger.Info("script done", "statements", len(statements))
			return nil
		},
	}
}
