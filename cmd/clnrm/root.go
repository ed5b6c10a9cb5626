package main

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/clnrm/clnrm/pkg/embedutil"
	"github.com/clnrm/clnrm/pkg/options"
	"github.com/clnrm/clnrm/pkg/options/cobrautil"
	"github.com/clnrm/clnrm/pkg/options/flagutil"
	"github.com/clnrm/clnrm/pkg/termdoc"
	"github.com/clnrm/clnrm/pkg/termdoc/codefmt"

	commands "github.com/clnrm/clnrm/pkg/cmd"
)

const quickStart = `
# clnrm quick start

A test suite is a directory of ` + "`.tera`" + ` templates. Each template renders
to a TOML test descriptor once run through the variable resolver.

    clnrm run suite/*.tera
    clnrm validate suite/*.tera
    clnrm render suite/smoke.tera --set image=myapp:dev
    clnrm fmt --check rendered/*.toml
    clnrm digest suite/smoke.tera
`

func newRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "clnrm",
		Short:   "Hermetic container integration test runner",
		Version: version,
		Example: heredoc.Doc(`
			# Run every scenario in a suite:
			clnrm run suite/*.tera

			# Check templates parse and validate without executing anything:
			clnrm validate suite/*.tera

			# Render a single template with an authoring override:
			clnrm render suite/smoke.tera --set image=myapp:dev`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cobrautil.ParseEnvOverrides(cmd)
		},
	}

	root.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newRenderCmd(),
		newFmtCmd(),
		newDigestCmd(),
		newSchemaCmd(),
	)

	formatOptions := cobrautil.UsageFormatOptions{
		Format: cobrautil.Formatter{
			Header: strings.ToUpper,
			Example: func(s string) string {
				return termdoc.AutoCodeFormat().Format(s, codefmt.Bash)
			},
		},
		FlagOptions: flagutil.UsageFormatOptions{
			FormatType: func(flag *pflag.Flag, typeName string) string {
				opt := options.FromFlag(flag)
				if opt.FlagType != "" {
					typeName = opt.FlagType
				}
				return typeName
			},
			FormatUsage: func(flag *pflag.Flag, usage string) string {
				opt := options.FromFlag(flag)
				if opt.Env != "" {
					usage += " (env: " + opt.Env + ")"
				}
				return usage
			},
		},
		LocalFlags: cobrautil.FlagGroupingOptions{GroupFlags: true},
	}
	cobrautil.WithCustomUsage(root, formatOptions)

	docs := &embedutil.Documentation{
		Title:   "clnrm: hermetic container integration test runner",
		Command: root,
		Categories: []*embedutil.Category{
			embedutil.NewCategory(
				"docs", "General Documentation", root.Name(), 7,
				embedutil.LoadMarkdownString("quick-start", "Quick Start Guide", "quick-start.md", quickStart),
			),
		},
	}

	commands.AddGroupedCommands(root,
		&cobra.Group{ID: "utils", Title: "Utility commands"},
		commands.NewVersionCmd(getVersionInfo()),
		commands.NewInfoCmd(docs),
	)

	return root
}
