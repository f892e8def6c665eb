// Package config holds the TOML configuration of the ndcheck tool: which engine
// to use, how the native library is opened, the parity check parameters and
// logging.
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/native"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parity"
	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// Config is the top-level configuration.
type Config struct {
	Engine string
	Native NativeConfig
	Check  CheckConfig
	Log    LogConfig
}

// NativeConfig configures the native engine.
type NativeConfig struct {
	UseBLAS     bool
	BLASLibrary string `toml:",omitempty"`
}

// CheckConfig configures cross-engine parity runs.
type CheckConfig struct {
	Sizes            []int
	Seed             int64
	Tolerance        float64
	Float32Tolerance float64
	Workers          int
	DTypes           []string `toml:",omitempty"`
	Checks           []string `toml:",omitempty"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

// Default returns the default configuration.
func Default() Config {
	p := parity.DefaultOptions()
	return Config{
		Engine: engine.Pure.String(),
		Check: CheckConfig{
			Sizes:            p.Sizes,
			Seed:             p.Seed,
			Tolerance:        p.Tolerance,
			Float32Tolerance: p.Float32Tolerance,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// Load decodes the TOML file over cfg. Keys missing from the file keep their
// current values.
func Load(file string, cfg *Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = Decode(bufio.NewReader(f), cfg)
	// Add file name to errors that have a line number.
	if _, ok := errors.Cause(err).(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// Decode reads TOML from r over cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := tomlSettings.NewDecoder(r).Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Marshal encodes cfg as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return tomlSettings.Marshal(c)
}

// Validate checks that every enumerated value is known.
func (c *Config) Validate() error {
	if _, err := c.EngineType(); err != nil {
		return errors.Wrap(err, "Engine")
	}
	if _, err := c.Check.Options(); err != nil {
		return errors.Wrap(err, "Check")
	}
	if _, err := c.Log.Handler(io.Discard); err != nil {
		return errors.Wrap(err, "Log")
	}
	return nil
}

// EngineType parses the Engine field.
func (c *Config) EngineType() (engine.EngineType, error) {
	return engine.ParseEngineType(c.Engine)
}

// Options converts the native section for native.Open.
func (n NativeConfig) Options(logger *slog.Logger) native.Options {
	return native.Options{
		UseBLAS:     n.UseBLAS,
		BLASLibrary: n.BLASLibrary,
		Logger:      logger,
	}
}

// Options converts the check section for parity.Run.
func (c CheckConfig) Options() (parity.Options, error) {
	opts := parity.Options{
		Sizes:            c.Sizes,
		Seed:             c.Seed,
		Tolerance:        c.Tolerance,
		Float32Tolerance: c.Float32Tolerance,
		Workers:          c.Workers,
		Checks:           c.Checks,
	}
	if c.Tolerance < 0 || c.Float32Tolerance < 0 {
		return opts, errors.Errorf("negative tolerance %g/%g", c.Tolerance, c.Float32Tolerance)
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return opts, errors.Errorf("size %d must be positive", s)
		}
	}
	for _, name := range c.DTypes {
		dt, err := ndarray.ParseDataType(name)
		if err != nil {
			return opts, err
		}
		opts.DTypes = append(opts.DTypes, dt)
	}
	known := parity.Checks()
	for _, name := range c.Checks {
		if !slices.Contains(known, name) {
			return opts, errors.Errorf("unknown check %q (known: %s)", name, strings.Join(known, ", "))
		}
	}
	return opts, nil
}

// Handler builds the slog handler writing to w.
func (l LogConfig) Handler(w io.Writer) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return nil, errors.Wrapf(err, "level %q", l.Level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(l.Format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, errors.Errorf("unknown format %q", l.Format)
	}
}
