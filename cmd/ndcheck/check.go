package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/parity"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"
)

var (
	checkCommand = cli.Command{
		Action:    check,
		Name:      "check",
		Usage:     "Compare an engine against the pure Go reference",
		ArgsUsage: "",
		Category:  "ENGINE COMMANDS",
		Flags: []cli.Flag{
			candidateFlag,
			sizesFlag,
			seedFlag,
			failedOnlyFlag,
		},
		Description: `The check command runs every parity check for every element kind and
matrix size, prints a result table and exits with status 1 if any check failed.`,
	}

	candidateFlag = cli.StringFlag{
		Name:  "candidate",
		Usage: "Engine to check against pure",
		Value: engine.Native.String(),
	}
	sizesFlag = cli.StringFlag{
		Name:  "sizes",
		Usage: "Comma-separated matrix sizes (overrides Check.Sizes)",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Input seed (overrides Check.Seed)",
	}
	failedOnlyFlag = cli.BoolFlag{
		Name:  "failed",
		Usage: "Only print failed checks",
	}
)

func check(ctx *cli.Context) error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	candType, err := engine.ParseEngineType(ctx.String(candidateFlag.Name))
	if err != nil {
		return err
	}
	cand, err := reg.Lookup(candType)
	if err != nil {
		return err
	}
	ref, err := reg.Lookup(engine.Pure)
	if err != nil {
		return err
	}

	opts, err := cfg.Check.Options()
	if err != nil {
		return err
	}
	if ctx.IsSet(sizesFlag.Name) {
		if opts.Sizes, err = parseSizes(ctx.String(sizesFlag.Name)); err != nil {
			return err
		}
	}
	if ctx.IsSet(seedFlag.Name) {
		opts.Seed = ctx.Int64(seedFlag.Name)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("Running parity checks", "reference", ref.Name(), "candidate", cand.Name(),
		"sizes", opts.Sizes, "seed", opts.Seed, "tolerance", opts.Tolerance, "float32Tolerance", opts.Float32Tolerance)
	report, err := parity.Run(runCtx, ref, cand, opts)
	if err != nil {
		return err
	}

	writeReport(ctx.App.Writer, report, ctx.Bool(failedOnlyFlag.Name))
	if failed := len(report.Failed()); failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d checks failed", failed, len(report.Results)), 1)
	}
	fmt.Fprintf(ctx.App.Writer, "%s all %d checks passed\n", color.GreenString("OK"), len(report.Results))
	return nil
}

func writeReport(w io.Writer, report *parity.Report, failedOnly bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "DType", "Size", "Result", "Time", "Detail"})
	table.SetAutoWrapText(false)
	for _, r := range report.Results {
		if failedOnly && r.Passed() {
			continue
		}
		status, detail := color.GreenString("PASS"), ""
		if !r.Passed() {
			status = color.RedString("FAIL")
			detail = firstLine(r.Diff)
			if r.Err != nil {
				detail = r.Err.Error()
			}
		}
		table.Append([]string{r.Check, r.DType.String(), strconv.Itoa(r.Size), status, r.Elapsed.String(), detail})
	}
	table.Render()
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
