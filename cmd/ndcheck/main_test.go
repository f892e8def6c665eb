package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/ndarray/internal/backend/pure"
	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/parity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	require.NoError(t, app.Run(append([]string{"ndcheck", "--log.level", "error"}, args...)))
	return buf.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "ndcheck "+version+"\n", run(t, "version"))
}

func TestBackends(t *testing.T) {
	out := run(t, "backends")
	assert.Contains(t, out, "Pure Go")
	assert.Contains(t, out, "native")
}

func TestDumpConfig(t *testing.T) {
	out := run(t, "--engine", "pure", "--blas.library", "libopenblas.so", "dumpconfig")
	assert.Contains(t, out, `Engine = "pure"`)
	assert.Contains(t, out, `BLASLibrary = "libopenblas.so"`)

	file := filepath.Join(t.TempDir(), "ndcheck.toml")
	run(t, "dumpconfig", file)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Check]")

	out = run(t, "--config", file, "--log.format", "json", "dumpconfig")
	assert.Contains(t, out, `Format = "json"`)
}

func TestCheck_PureAgainstItself(t *testing.T) {
	out := run(t, "check", "--candidate", "pure", "--sizes", "1,3", "--seed", "5")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "checks passed")
	assert.NotContains(t, out, "FAIL")
}

func TestInvalidConfig(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	assert.Error(t, app.Run([]string{"ndcheck", "--engine", "gpu", "backends"}))
}

func TestWriteBackends_DefaultMarked(t *testing.T) {
	reg := engine.NewRegistry()
	reg.Register(pure.New())

	var buf bytes.Buffer
	require.NoError(t, writeBackends(&buf, reg))
	assert.Contains(t, buf.String(), "*")
	assert.Contains(t, buf.String(), "no")
}

func TestWriteReport_FailedOnly(t *testing.T) {
	report := &parity.Report{Results: []parity.Result{
		{Check: "sum", Size: 3, Diff: "-: 1\n+: 2"},
		{Check: "dot", Size: 3},
	}}

	var buf bytes.Buffer
	writeReport(&buf, report, true)
	assert.Contains(t, buf.String(), "sum")
	assert.Contains(t, buf.String(), "-: 1 ...")
	assert.NotContains(t, buf.String(), "dot")
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("1, 2,30")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30}, sizes)

	_, err = parseSizes("1,x")
	assert.Error(t, err)
	_, err = parseSizes("0")
	assert.Error(t, err)
}
