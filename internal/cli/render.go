package cli

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/errors"
	"github.com/ecbingo/ecbingo/pkg/observability"
	"github.com/ecbingo/ecbingo/pkg/render"
)

func (c *CLI) renderCommand() *cobra.Command {
	var files ioFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a board as a PNG image",
		Long: `Render a board as a PNG image.

Categories are drawn onto the base image (the base_image setting, or a
generated card) and every marked cell gets its emote scaled into the cell.`,
		Example: "  ecbingo render < board.json > board.png\n  ecbingo render -i board.json -o board.png",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if files.output == "" && isTerminal(c.stdout) {
				return errors.New(errors.ErrCodeInvalidInput, "refusing to write PNG to a terminal; redirect stdout or use --output")
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			r, err := newRenderer(cfg)
			if err != nil {
				return err
			}
			b, err := c.readBoard(files)
			if err != nil {
				return err
			}

			start := time.Now()
			img, err := r.Render(b)
			observability.Board().OnRender(cmd.Context(), len(b.Markers()), time.Since(start), err)
			if err != nil {
				return err
			}
			if err := c.writeOutput(files, func(w io.Writer) error { return render.EncodePNG(w, img) }); err != nil {
				return err
			}

			if files.output != "" {
				printSuccess(c.stderr, "Rendered %s", files.output)
			}
			return nil
		},
	}

	files.register(cmd, true)
	return cmd
}
