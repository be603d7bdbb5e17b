package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/snippetly/song-snippetly/internal/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "seed",
		Short:        "Replace the snippet catalog with the sample data",
		SilenceUsage: true,
		RunE:         runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	a, err := setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	return seed.Run(ctx, a.catalog, a.log)
}
