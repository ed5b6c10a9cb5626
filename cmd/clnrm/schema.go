package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/genschema"
	"github.com/clnrm/clnrm/pkg/model"
)

func newSchemaCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Write the JSON Schema for rendered test descriptors",
		Args:  cobra.NoArgs,
		Example: heredoc.Doc(`
			clnrm schema
			clnrm schema --out-dir docs/schemas`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genschema.GenJSONSchema(
				outDir,
				[]any{&model.TestConfig{}},
				"clnrm.dev/schemas",
				"github.com/clnrm/clnrm",
			)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "schemas", "directory to write the generated schema file into")

	return cmd
}
