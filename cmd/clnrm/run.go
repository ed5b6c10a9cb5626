package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/backend/containers"
	"github.com/clnrm/clnrm/pkg/cache"
	"github.com/clnrm/clnrm/pkg/engine"
	"github.com/clnrm/clnrm/pkg/logger"
	"github.com/clnrm/clnrm/pkg/redact"
	"github.com/clnrm/clnrm/pkg/report"
	"github.com/clnrm/clnrm/pkg/secret"
)

type runAction struct {
	workers     int
	force       bool
	jsonOut     string
	junitOut    string
	markdownOut string
	token       secret.Value
}

func newRunCmd() *cobra.Command {
	action := &runAction{}

	cmd := &cobra.Command{
		Use:   "run <template>...",
		Short: "Render, execute, and validate one or more test suites",
		Args:  cobra.MinimumNArgs(1),
		Example: heredoc.Doc(`
			clnrm run suite/*.tera
			clnrm run --workers 8 --force suite/smoke.tera`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if action.token.String() != "" {
				tok, err := action.token.Get(cmd.Context())
				if err != nil {
					return fmt.Errorf("resolving --otel-token: %w", err)
				}
				if err := os.Setenv("OTEL_TOKEN", string(tok)); err != nil {
					return err
				}
				logger.FromContext(cmd.Context()).Info("resolved otel token", "source", action.token.String(), "value", redact.String(string(tok)))
			}

			store, err := cache.Open("")
			if err != nil {
				return err
			}

			e, err := engine.New(containers.New(), engine.WithCache(store))
			if err != nil {
				return err
			}

			rr, err := e.Run(cmd.Context(), args, action.workers, action.force)
			if err != nil {
				return err
			}

			out, err := report.JSON(rr.Run)
			if err != nil {
				return err
			}
			cmd.Println(string(out))

			if action.jsonOut != "" {
				if err := writeFile(action.jsonOut, out); err != nil {
					return err
				}
			}
			if action.junitOut != "" {
				junit, err := report.JUnit(rr.Run)
				if err != nil {
					return err
				}
				if err := writeFile(action.junitOut, junit); err != nil {
					return err
				}
			}
			if action.markdownOut != "" {
				if err := writeFile(action.markdownOut, []byte(report.Markdown(rr.Run))); err != nil {
					return err
				}
			}

			summary := rr.Run.BuildSummary()
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&action.workers, "workers", "w", 0, "parallel scenario worker count (0 uses the engine default)")
	cmd.Flags().BoolVarP(&action.force, "force", "f", false, "bypass the change-detection cache and execute every scenario")
	cmd.Flags().StringVar(&action.jsonOut, "json", "", "write the JSON report to this path")
	cmd.Flags().StringVar(&action.junitOut, "junit", "", "write the JUnit XML report to this path")
	cmd.Flags().StringVar(&action.markdownOut, "markdown", "", "write a human-readable Markdown summary to this path")
	cmd.Flags().Var(&action.token, "otel-token", "OTel exporter auth token source, e.g. env:OTEL_TOKEN or file:/run/secrets/otel-token")

	return cmd
}
