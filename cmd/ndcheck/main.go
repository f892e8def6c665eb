// Command ndcheck inspects the available math engines and checks that the native
// engine agrees with the pure Go one.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/born-ml/ndarray/internal/backend/native"
	"github.com/born-ml/ndarray/internal/backend/pure"
	"github.com/born-ml/ndarray/internal/config"
	"github.com/born-ml/ndarray/internal/engine"
	"gopkg.in/urfave/cli.v1"
)

const version = "v0.1.0-dev"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	engineFlag = cli.StringFlag{
		Name:  "engine",
		Usage: "Default engine (pure or native)",
	}
	blasFlag = cli.BoolFlag{
		Name:  "blas",
		Usage: "Delegate float products of the native engine to CBLAS",
	}
	blasLibraryFlag = cli.StringFlag{
		Name:  "blas.library",
		Usage: "CBLAS shared library to load (default: the usual OpenBLAS names)",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log.level",
		Usage: "Log level (debug, info, warn, error)",
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log.format",
		Usage: "Log format (text or json)",
	}
)

// cfg is the effective configuration, set up by before.
var cfg config.Config

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ndcheck"
	app.Usage = "inspect and cross-check the ndarray math engines"
	app.Version = version
	app.Flags = []cli.Flag{
		configFileFlag,
		engineFlag,
		blasFlag,
		blasLibraryFlag,
		logLevelFlag,
		logFormatFlag,
	}
	app.Before = before
	app.Commands = []cli.Command{
		backendsCommand,
		checkCommand,
		dumpConfigCommand,
		versionCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// before loads defaults, then the config file, then applies flags.
func before(ctx *cli.Context) error {
	cfg = config.Default()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := config.Load(file, &cfg); err != nil {
			return err
		}
	}
	if ctx.GlobalIsSet(engineFlag.Name) {
		cfg.Engine = ctx.GlobalString(engineFlag.Name)
	}
	if ctx.GlobalIsSet(blasFlag.Name) {
		cfg.Native.UseBLAS = ctx.GlobalBool(blasFlag.Name)
	}
	if ctx.GlobalIsSet(blasLibraryFlag.Name) {
		cfg.Native.BLASLibrary = ctx.GlobalString(blasLibraryFlag.Name)
	}
	if ctx.GlobalIsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.GlobalString(logLevelFlag.Name)
	}
	if ctx.GlobalIsSet(logFormatFlag.Name) {
		cfg.Log.Format = ctx.GlobalString(logFormatFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	h, err := cfg.Log.Handler(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// newRegistry registers the pure engine and, when it can be opened, the native
// one, then selects the configured default. If the configured engine is missing
// the pure engine stays the default.
func newRegistry() (*engine.Registry, error) {
	reg := engine.NewRegistry()
	reg.Register(pure.New())

	if native.IsAvailable() {
		e, err := native.New(cfg.Native.Options(slog.Default()))
		if err != nil {
			slog.Warn("Native engine unavailable", "err", err)
		} else {
			reg.Register(e)
		}
	} else {
		slog.Debug("Native engine not compiled in (cgo disabled)")
	}

	t, err := cfg.EngineType()
	if err != nil {
		return nil, err
	}
	if err := reg.SetDefault(t); err != nil {
		slog.Warn("Configured engine unavailable, using pure", "engine", t, "err", err)
	}
	return reg, nil
}
