package main

import (
	"github.com/spf13/cobra"
)

func newNewestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "newest",
		Short: "List the newest talks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			talks, err := ctx.store.GetNewest(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(talks) == 0 {
				writeLine(out, "No talks published yet")
				return nil
			}
			writeLine(out, "%s", renderTalkList(talks, shouldStyle(out)))
			return nil
		},
	}
}
