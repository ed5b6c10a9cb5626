package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/engine"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <template>...",
		Short: "Render and structurally validate templates without executing them",
		Args:  cobra.MinimumNArgs(1),
		Example: heredoc.Doc(`
			clnrm validate suite/*.tera`),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(nil)
			if err != nil {
				return err
			}
			lr, err := e.Validate(args)
			if err != nil {
				return err
			}
			for i, cfg := range lr.Configs {
				cmd.Printf("%s: ok (%d scenario(s), %d service(s))\n", args[i], len(cfg.Scenario), len(cfg.Service))
			}
			return nil
		},
	}
	return cmd
}
