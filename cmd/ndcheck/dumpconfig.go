package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[file]",
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows the effective configuration, after the config file and flags are applied.`,
	}

	versionCommand = cli.Command{
		Action:   printVersion,
		Name:     "version",
		Usage:    "Print version numbers",
		Category: "MISCELLANEOUS COMMANDS",
	}
)

func dumpConfig(ctx *cli.Context) error {
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}

func printVersion(ctx *cli.Context) error {
	fmt.Fprintf(ctx.App.Writer, "ndcheck %s\n", version)
	return nil
}
