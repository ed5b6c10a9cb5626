package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/engine"
)

type renderAction struct {
	sets []string
}

func newRenderCmd() *cobra.Command {
	action := &renderAction{}

	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a single template to stdout",
		Args:  cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			clnrm render suite/smoke.tera
			clnrm render suite/smoke.tera --set image=myapp:dev --set env=staging`),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(nil)
			if err != nil {
				return err
			}
			out, err := e.Render(args[0], parseSetFlags(action.sets))
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&action.sets, "set", nil, "authoring variable override, key=value (repeatable)")

	return cmd
}
