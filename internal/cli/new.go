package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/board"
)

func (c *CLI) newCommand() *cobra.Command {
	var (
		files ioFlags
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a fresh board",
		Long: `Create a fresh board and write its record.

Categories are drawn at random from the category pool (the built-in pool, or
the file named by the categories setting). --seed makes the draw repeatable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			pool, err := loadPool(cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			b, err := board.Create(pool, board.NewRand(seed))
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("created board", "seed", seed, "pool", len(pool))
			return c.writeBoard(files, b)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the category shuffle")
	files.register(cmd, false)
	return cmd
}
