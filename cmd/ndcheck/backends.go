package main

import (
	"io"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"
)

var backendsCommand = cli.Command{
	Action:      backends,
	Name:        "backends",
	Usage:       "List the math engines and whether they can be used",
	Category:    "ENGINE COMMANDS",
	Description: `The backends command prints one row per engine type with its availability and drivers.`,
}

type describer interface {
	Describe() string
}

func backends(ctx *cli.Context) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	return writeBackends(ctx.App.Writer, reg)
}

func writeBackends(w io.Writer, reg *engine.Registry) error {
	def, err := reg.Default()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Type", "Name", "Available", "Default", "Drivers"})
	for _, t := range []engine.EngineType{engine.Pure, engine.Native} {
		e, err := reg.Lookup(t)
		if err != nil {
			table.Append([]string{t.String(), "-", color.RedString("no"), "", "-"})
			continue
		}
		drivers := "Go"
		if d, ok := e.(describer); ok {
			drivers = d.Describe()
		}
		isDefault := ""
		if e.Type() == def.Type() {
			isDefault = "*"
		}
		table.Append([]string{t.String(), e.Name(), color.GreenString("yes"), isDefault, drivers})
	}
	table.Render()
	return nil
}
