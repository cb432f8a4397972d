// Package cli implements the gophase command.
package cli

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-phase/internal/config"
	"github.com/askiada/go-phase/pkg/phase"
)

// NewRootCmd creates the gophase command and its sub commands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gophase",
		Short: "Inspect phase plans",
		Long: `gophase loads a phase plan (a base phase order and the orders declared by plugins),
merges it the same way an application does at startup and prints or draws the result.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("plan", "p", "phases.yaml", "phase plan file")

	rootCmd.AddCommand(newOrderCmd(), newDrawCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func loadList(cmd *cobra.Command) (*phase.List[any], *slog.Logger, error) {
	path, err := cmd.Flags().GetString("plan")
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to read plan flag")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	list, err := config.Build[any](cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return list, logger, nil
}
