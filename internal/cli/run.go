package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cqltour/go-cqltour/cqltable"
	"github.com/cqltour/go-cqltour/tour"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the lessons of the course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, lesson := range tour.Lessons() {
				fmt.Fprintf(out, "%s %s\n",
					styleLesson.Render(fmt.Sprintf("%d. %s", lesson.Number, lesson.Title)),
					styleDim.Render(lesson.Summary))
			}
			return nil
		},
	}
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [lesson]",
		Short: "Run one lesson, or the whole course front to back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			lessons := tour.Lessons()
			if len(args) == 1 {
				number, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid lesson number %q", args[0])
				}
				lesson, ok := tour.LessonByNumber(number)
				if !ok {
					return fmt.Errorf("no lesson %d, see 'cqltour list'", number)
				}
				lessons = []tour.Lesson{lesson}
			}

			cfg, err := opts.clientConfig()
			if err != nil {
				return err
			}
			logger.Debug("connecting", "hosts", cfg.Addresses, "keyspace", cfg.Keyspace)
			client, err := cqltable.Connect(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connecting to Cassandra: %w", err)
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			runner := tour.NewRunner(client)
			failed := 0
			for _, lesson := range lessons {
				fmt.Fprintf(out, "\n%s\n%s\n",
					styleLesson.Render(fmt.Sprintf("Lesson %d: %s", lesson.Number, lesson.Title)),
					styleDim.Render(lesson.Summary))

				results, err := runner.RunLesson(ctx, lesson)
				if err != nil {
					return err
				}
				for _, result := range results {
					printResult(out, result)
					if result.Status == tour.StatusFailed {
						failed++
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d step(s) failed", failed)
			}
			return nil
		},
	}
}

func printResult(out io.Writer, result tour.Result) {
	var marker string
	switch result.Status {
	case tour.StatusPassed:
		marker = stylePassed.Render("ok  ")
	case tour.StatusFailed:
		marker = styleFailed.Render("FAIL")
	case tour.StatusPending:
		marker = stylePending.Render("todo")
	}
	fmt.Fprintf(out, "  %s %s\n", marker, result.Step.Title)
	if result.Output != "" && result.Status == tour.StatusPassed {
		fmt.Fprintln(out, result.Output)
	}
	if result.Message != "" {
		fmt.Fprintln(out, styleDim.Render(result.Message))
	}
}
