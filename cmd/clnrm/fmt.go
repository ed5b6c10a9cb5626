package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/engine"
)

type fmtAction struct {
	checkOnly bool
}

func newFmtCmd() *cobra.Command {
	action := &fmtAction{}

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Apply canonical TOML formatting to rendered test descriptors",
		Args:  cobra.MinimumNArgs(1),
		Example: heredoc.Doc(`
			clnrm fmt rendered/*.toml
			clnrm fmt --check rendered/*.toml`),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(nil)
			if err != nil {
				return err
			}
			fr, err := e.Fmt(args, action.checkOnly)
			if err != nil {
				return err
			}
			for _, path := range fr.Changed {
				cmd.Println(path)
			}
			if action.checkOnly && len(fr.Changed) > 0 {
				return fmt.Errorf("%d file(s) are not canonically formatted", len(fr.Changed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&action.checkOnly, "check", false, "report files that would change without rewriting them")

	return cmd
}
