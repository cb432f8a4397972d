package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-phase/pkg/phase/drawer"
)

func newDrawCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Write the merged phase order as a Graphviz DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, logger, err := loadList(cmd)
			if err != nil {
				return err
			}

			var wrt io.Writer = cmd.OutOrStdout()

			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return errors.Wrapf(err, "unable to create file %s", out)
				}
				defer file.Close()

				wrt = file
			}

			err = drawer.DrawPhases(drawer.NewDOTDrawer(wrt), list.PhaseInfos())
			if err != nil {
				return err
			}

			logger.Info("phases drawn", slog.Int("phases", list.Len()), slog.String("out", out))

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")

	return cmd
}
