package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/devicecheck"
)

func newPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List every platform label",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range devicecheck.Platforms() {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
		},
	}
}
