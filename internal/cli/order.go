package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the merged phase order, one phase per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, _, err := loadList(cmd)
			if err != nil {
				return err
			}

			for _, name := range list.PhaseNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
