package commands

import (
	"io"
	"os"

	"github.com/tidesearch/binlist/cmd/binlist/binutil"
	"github.com/urfave/cli/v2"
)

// NewDumpCommand returns a cli.Command for "binlist dump".
func NewDumpCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "dump",
		Usage:     "Decode a binlist stream and print it as JSON.",
		UsageText: `binlist dump [options] [file]`,
		Description: `The dump command decodes a binlist stream and prints it as indented JSON.

By default, the stream is read from a file and written to the standard output:

$ binlist dump response.bin

Without a file argument the stream is read from the standard input:

$ curl -s host/select?wt=bin | binlist dump

The dump command can also write directly into a file:

$ binlist dump -f response.json response.bin`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Value:   "auto",
				Usage:   "compression wrapping the stream: auto, none, zstd or lz4.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		compression, err := binutil.ParseCompression(c.String("compression"))
		if err != nil {
			return err
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

		r, err := binutil.NewReader(in, compression)
		if err != nil {
			return err
		}
		defer r.Close()

		var w io.Writer = os.Stdout
		if f := c.String("file"); f != "" {
			file, err := os.Create(f)
			if err != nil {
				return err
			}
			defer file.Close()

			w = file
		}

		return binutil.Dump(r, w)
	}

	return &cmd
}
