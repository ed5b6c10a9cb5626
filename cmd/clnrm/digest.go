package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/engine"
)

func newDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest <template>",
		Short: "Compute a scenario's cache digest without executing anything",
		Args:  cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			clnrm digest suite/smoke.tera`),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(nil)
			if err != nil {
				return err
			}
			d, err := e.Digest(args[0])
			if err != nil {
				return err
			}
			cmd.Println(d)
			return nil
		},
	}
	return cmd
}
