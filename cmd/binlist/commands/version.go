package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

// NewVersionCommand returns a cli.Command for "binlist version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the binlist CLI version",
		Action: func(c *cli.Context) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println(`version not available in GOPATH mode; use "go get" with Go modules enabled`)
				return nil
			}

			fmt.Printf("binlist %v\n", info.Main.Version)
			return nil
		},
	}
}
