package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/render"
)

const markedIcon = "✓"

var (
	styleCell   = lipgloss.NewStyle().Padding(0, 1).Width(14)
	styleMarked = styleCell.Foreground(colorGreen).Bold(true)
	styleFree   = styleCell.Foreground(colorDim).Align(lipgloss.Center)
	styleHeader = StyleTitle.Align(lipgloss.Center).Width(14)
)

func (c *CLI) showCommand() *cobra.Command {
	var files ioFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a board as a table",
		Long:  "Print a board as a 5x5 table. Marked cells are highlighted and flagged with " + markedIcon + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.readBoard(files)
			if err != nil {
				return err
			}
			return c.writeOutput(files, func(w io.Writer) error {
				_, err := io.WriteString(w, boardTable(b)+"\n")
				return err
			})
		},
	}

	files.register(cmd, true)
	return cmd
}

// boardTable lays b out like the printed card: one column per letter, one
// row per number.
func boardTable(b *board.Board) string {
	headers := make([]string, board.Width)
	for i := range headers {
		headers[i] = string(board.Columns[i])
	}

	rows := make([][]string, board.Height)
	for row := range rows {
		rows[row] = make([]string, board.Width)
		for col := range rows[row] {
			p, _ := board.NewPoint(board.Columns[col], row+1)
			rows[row][col] = cellText(b, p)
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			p, _ := board.NewPoint(board.Columns[col], row+1)
			switch {
			case p.IsFree():
				return styleFree
			case b.Marked(p):
				return styleMarked
			default:
				return styleCell
			}
		}).
		Render()
}

func cellText(b *board.Board, p board.Point) string {
	if p.IsFree() {
		return "FREE"
	}
	cat, _ := b.Category(p)
	text := strings.Join(render.Wrap(cat, render.DefaultWrapWidth), "\n")
	if b.Marked(p) {
		text = markedIcon + " " + text
	}
	return text
}
