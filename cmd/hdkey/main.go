package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "hdkey"
	app.Usage = "BIP39 mnemonics, seeds and BIP44 P2PKH addresses"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "yaml config file; built-in defaults and env overrides apply without it",
		},
	}
	app.Commands = append(
		app.Commands,
		&generate,
		&validate,
		&seed,
		&address,
	)
	return app
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[hdkey] %v\n", err)
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	os.Exit(1)
}
