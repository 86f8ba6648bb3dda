package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/tinyprs/pkg/api"
	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/config"
	"github.com/ssargent/tinyprs/pkg/di"
	"github.com/ssargent/tinyprs/pkg/preset"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, c *di.Container, args ...string) result {
	t.Helper()
	if c == nil {
		c = di.NewContainer()
	}
	resetFlags(rootCmd)
	SetContainer(c)

	var out, errb bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errb)
	rootCmd.SetArgs(args)
	err := run()
	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

// writeConfig writes a config with the archive inside dir
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Archive.DataDir = filepath.Join(dir, "archive")
	cfg.Logging.Level = "error"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.SaveConfig(cfg, path))
	return path
}

func writePreset(t *testing.T, dir, name string, p *preset.Preset) (string, []byte) {
	t.Helper()
	data, err := codec.NewPresetCodec().Encode(p)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, data
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	prs, data := writePreset(t, dir, "scan.prs", preset.Default())

	t.Run("export prints document", func(t *testing.T) {
		res := execute(t, nil, "--config", cfgPath, "convert", prs)
		require.NoError(t, res.err, res.stderr)
		assert.True(t, strings.HasPrefix(res.stdout, "{\n    \"auto_reflevel\": true"))
		assert.True(t, strings.HasSuffix(res.stdout, "}\n"))
	})

	t.Run("export writes yaml", func(t *testing.T) {
		res := execute(t, nil, "--config", cfgPath, "convert", "--write", "--format", "yaml", prs)
		require.NoError(t, res.err, res.stderr)

		want := filepath.Join(dir, "scan.yaml")
		assert.Equal(t, prs+" -> "+want+"\n", res.stdout)
		assert.FileExists(t, want)
	})

	t.Run("import writes record", func(t *testing.T) {
		res := execute(t, nil, "--config", cfgPath, "convert", filepath.Join(dir, "scan.yaml"))
		require.NoError(t, res.err, res.stderr)

		got, err := os.ReadFile(filepath.Join(dir, "scan.yaml.prs"))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("failures are counted", func(t *testing.T) {
		res := execute(t, nil, "--config", cfgPath, "convert", filepath.Join(dir, "scan.bmp"), prs)
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "1 of 2 conversions failed")
		assert.Contains(t, res.stderr, "scan.bmp")
		assert.Contains(t, res.stdout, "auto_reflevel")
	})

	t.Run("strict rejects unknown enums", func(t *testing.T) {
		p := preset.Default()
		p.Mode = 7
		bad, _ := writePreset(t, dir, "bad.prs", p)

		res := execute(t, nil, "--config", cfgPath, "convert", bad)
		require.NoError(t, res.err)

		res = execute(t, nil, "--config", cfgPath, "convert", "--strict", bad)
		assert.Error(t, res.err)
	})
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	good, data := writePreset(t, dir, "good.prs", preset.Default())
	sum := codec.Checksum(data[:codec.ChecksumRange])

	res := execute(t, nil, "--config", cfgPath, "verify", good)
	require.NoError(t, res.err)
	assert.Equal(t, good+": OK, checksum 0x"+hex32(sum)+"\n", res.stdout)

	data[30] ^= 0xFF
	bad := filepath.Join(dir, "bad.prs")
	require.NoError(t, os.WriteFile(bad, data, 0644))

	res = execute(t, nil, "--config", cfgPath, "verify", good, bad)
	require.Error(t, res.err)
	assert.Contains(t, res.stdout, good+": OK")
	assert.Contains(t, res.stdout, bad+": checksum mismatch, calculated 0x")
	assert.Contains(t, res.stdout, "vs. stored 0x"+hex32(sum))
}

func hex32(v uint32) string {
	return fmt.Sprintf("%08X", v)
}

func TestDefaultCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	res := execute(t, nil, "--config", cfgPath, "default")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"trigger_trace": 255`)

	out := filepath.Join(dir, "default.prs")
	res = execute(t, nil, "--config", cfgPath, "default", "--output", out)
	require.NoError(t, res.err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	p, err := codec.NewPresetCodec().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, preset.Default(), p)

	res = execute(t, nil, "--config", cfgPath, "default", "--output", filepath.Join(dir, "default.yml"))
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(dir, "default.yml"))

	res = execute(t, nil, "--config", cfgPath, "default", "--output", filepath.Join(dir, "default.bmp"))
	assert.Error(t, res.err)
}

func TestArchiveCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	p := preset.Default()
	p.Name = "Airband"
	prs, data := writePreset(t, dir, "air.prs", p)

	res := execute(t, nil, "--config", cfgPath, "archive", "put", prs)
	require.NoError(t, res.err, res.stderr)
	id := strings.Fields(res.stdout)[0]

	res = execute(t, nil, "--config", cfgPath, "archive", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, id)
	assert.Contains(t, res.stdout, "Airband")

	res = execute(t, nil, "--config", cfgPath, "archive", "get", id)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"preset_name": "Airband"`)

	out := filepath.Join(dir, "copy.prs")
	res = execute(t, nil, "--config", cfgPath, "archive", "get", id, "--output", out)
	require.NoError(t, res.err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	res = execute(t, nil, "--config", cfgPath, "archive", "delete", id)
	require.NoError(t, res.err)

	res = execute(t, nil, "--config", cfgPath, "archive", "get", id)
	assert.Error(t, res.err)
}

func TestArchivePutDocument(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	doc := filepath.Join(dir, "scan.yaml")
	require.NoError(t, os.WriteFile(doc, []byte("preset_name: Scan\nreflevel: -40\n"), 0644))

	res := execute(t, nil, "--config", cfgPath, "archive", "put", doc)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, doc)

	res = execute(t, nil, "--config", cfgPath, "archive", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Scan")

	bad := filepath.Join(dir, "scan.txt")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0644))
	res = execute(t, nil, "--config", cfgPath, "archive", "put", bad)
	assert.Error(t, res.err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "tinyprs.yaml")

	res := execute(t, nil, "--config", path, "init", "--data-dir", filepath.Join(dir, "data"))
	require.NoError(t, res.err)
	require.True(t, config.ConfigExists(path))

	first, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), first.Archive.DataDir)
	assert.Len(t, first.Server.APIKey, 64)
	assert.Contains(t, res.stdout, first.Server.APIKey)

	res = execute(t, nil, "--config", path, "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "already exists")

	res = execute(t, nil, "--config", path, "init", "--force")
	require.NoError(t, res.err)
	second, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.NotEqual(t, first.Server.APIKey, second.Server.APIKey)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	res := execute(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "default")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "config file does not exist")
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	cfgPath := writeConfig(t, t.TempDir())
	res := execute(t, nil, "--config", cfgPath, "--log-level", "chatty", "default")
	assert.Error(t, res.err)
}

func TestRootCommand_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	prs, _ := writePreset(t, dir, "m.prs", preset.Default())
	metrics := filepath.Join(dir, "tinyprs.prom")

	res := execute(t, nil, "--config", cfgPath, "--metrics-file", metrics, "convert", prs, filepath.Join(dir, "missing.prs"))
	require.Error(t, res.err)

	out, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(out), `tinyprs_conversions_total{direction="export",status="success"} 1`)
	assert.Contains(t, string(out), `tinyprs_conversions_total{direction="export",status="error"} 1`)
}

type fakeStarter struct {
	config  api.ServerConfig
	handler http.Handler
}

func (f *fakeStarter) StartServer(ctx context.Context, handler http.Handler, config api.ServerConfig) error {
	f.config = config
	f.handler = handler
	return nil
}

type fakeFactory struct{ starter *fakeStarter }

func (f fakeFactory) CreateServerStarter() api.ServerStarter { return f.starter }

func TestServeCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	starter := &fakeStarter{}
	c := di.NewContainer()
	c.SetServerFactory(fakeFactory{starter: starter})

	res := execute(t, c, "--config", cfgPath, "serve", "--port", "9300", "--bind", "0.0.0.0", "--api-key", "k")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, api.ServerConfig{Port: 9300, Bind: "0.0.0.0", APIKey: "k"}, starter.config)
	require.NotNil(t, starter.handler)
	assert.DirExists(t, filepath.Join(dir, "archive"))
}
