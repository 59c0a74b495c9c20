package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/observability"
)

func (c *CLI) markCommand() *cobra.Command {
	var (
		files   ioFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "mark <point> <emote>",
		Short: "Mark a cell with an emote",
		Long: `Mark a cell with an emote image fetched from Emote Collector.

The point is a column letter (B, I, N, G, O) followed by a row 1-5, e.g. G3.
N3 is the free space and cannot be marked. Marking a cell that is already
marked replaces its emote. Exits with status 2 if the emote does not exist.`,
		Example: "  ecbingo mark G3 Think < board.json > marked.json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			p, err := board.ParseMutable(args[0])
			if err != nil {
				return err
			}
			name := args[1]

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			b, err := c.readBoard(files)
			if err != nil {
				return err
			}

			store, err := newCache(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			spin := newSpinner(ctx, c.stderr, fmt.Sprintf("Fetching %s", name))
			spin.Start()
			prog := newProgress(logger)
			blob, err := newCatalog(cfg, store).Image(ctx, name)
			spin.Stop()
			if err != nil {
				return err
			}
			prog.done("fetched emote", "emote", name, "bytes", len(blob))

			replaced := b.Marked(p)
			if replaced {
				logger.Info("replacing marker", "point", p, "emote", name)
			}
			if b, err = b.Mark(p, blob); err != nil {
				return err
			}
			observability.Board().OnMark(ctx, p.String(), name, replaced)
			return c.writeBoard(files, b)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "always download the emote")
	files.register(cmd, true)
	return cmd
}

func (c *CLI) unmarkCommand() *cobra.Command {
	var files ioFlags

	cmd := &cobra.Command{
		Use:     "unmark <point>",
		Short:   "Clear a marked cell",
		Example: "  ecbingo unmark G3 < marked.json > board.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := board.ParseMutable(args[0])
			if err != nil {
				return err
			}
			b, err := c.readBoard(files)
			if err != nil {
				return err
			}
			if b, err = b.Unmark(p); err != nil {
				return err
			}
			observability.Board().OnUnmark(cmd.Context(), p.String())
			return c.writeBoard(files, b)
		},
	}

	files.register(cmd, true)
	return cmd
}
