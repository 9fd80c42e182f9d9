package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

// NewApp creates the binlist CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binlist"
	app.Usage = "Inspect and produce binlist streams"
	app.EnableBashCompletion = true

	app.Commands = []*cli.Command{
		NewDumpCommand(),
		NewEncodeCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	for i := range app.Commands {
		action := app.Commands[i].Action
		app.Commands[i].Action = func(c *cli.Context) error {
			c.Context = ctx
			return action(c)
		}
	}

	app.After = func(c *cli.Context) error {
		cancel()
		return nil
	}

	return app
}
