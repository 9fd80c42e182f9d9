package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/tidesearch/binlist/cmd/binlist/binutil"
	"github.com/urfave/cli/v2"
)

// NewEncodeCommand returns a cli.Command for "binlist encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode a JSON document as a binlist stream.",
		UsageText: `binlist encode [options] [file]`,
		Description: `The encode command reads a JSON document and writes it as a binlist stream.

By default, the document is read from a file and the stream is written to the
standard output:

$ binlist encode response.json > response.bin

Without a file argument the document is read from the standard input. JSON has
no date type, so fields holding dates have to be named to be written as such:

$ binlist encode --date-field timestamp -f response.bin response.json

The stream can be compressed on the way out:

$ binlist encode -c zstd -f response.bin.zst response.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Value:   "none",
				Usage:   "compression to apply to the stream: none, zstd or lz4.",
			},
			&cli.StringSliceFlag{
				Name:  "date-field",
				Usage: "name of a field whose text values hold dates. May be repeated.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		compression, err := binutil.ParseCompression(c.String("compression"))
		if err != nil {
			return err
		}
		if compression == binutil.CompressionAuto {
			return errors.New("auto compression only applies when reading")
		}

		var in io.Reader = os.Stdin
		if path := c.Args().First(); path != "" {
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			in = file
		}

		var out io.Writer = os.Stdout
		if f := c.String("file"); f != "" {
			file, err := os.Create(f)
			if err != nil {
				return err
			}
			defer file.Close()

			out = file
		}

		w, err := binutil.NewWriter(out, compression)
		if err != nil {
			return err
		}

		if err := binutil.Encode(in, w, c.StringSlice("date-field")); err != nil {
			w.Close()
			return err
		}

		return w.Close()
	}

	return &cmd
}
