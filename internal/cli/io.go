package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/errors"
)

// ioFlags selects where a command reads its record and writes its result.
type ioFlags struct {
	input  string
	output string
}

func (f *ioFlags) register(cmd *cobra.Command, in bool) {
	if in {
		cmd.Flags().StringVarP(&f.input, "input", "i", "", "read the board record from file instead of stdin")
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
}

// readBoard decodes the input record.
func (c *CLI) readBoard(f ioFlags) (*board.Board, error) {
	if f.input == "" || f.input == "-" {
		return board.Decode(c.stdin)
	}
	file, err := os.Open(f.input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open record")
	}
	defer file.Close()
	return board.Decode(file)
}

// writeOutput runs write against stdout or the output file. Files are
// replaced atomically, so -i and -o may name the same path.
func (c *CLI) writeOutput(f ioFlags, write func(io.Writer) error) error {
	if f.output == "" || f.output == "-" {
		return write(c.stdout)
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.output), "."+filepath.Base(f.output)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create output")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	if err := os.Rename(tmp.Name(), f.output); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output")
	}
	return nil
}

// writeBoard encodes b to the output.
func (c *CLI) writeBoard(f ioFlags, b *board.Board) error {
	return c.writeOutput(f, func(w io.Writer) error { return board.Encode(w, b) })
}
