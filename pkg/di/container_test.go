package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/api"
	"github.com/ssargent/tinyprs/pkg/config"
	"github.com/ssargent/tinyprs/pkg/preset"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer()

	assert.Equal(t, config.DefaultConfig(), c.Config())
	assert.NotNil(t, c.Logger())
	assert.NotNil(t, c.Registry())
	assert.NotNil(t, c.GetServerFactory())
}

func TestContainer_Converter(t *testing.T) {
	c := NewContainer()

	conv, err := c.Converter()
	require.NoError(t, err)
	doc, err := conv.Render(preset.Default())
	require.NoError(t, err)
	assert.Contains(t, string(doc), "\n    \"auto_reflevel\": true")

	// metrics are registered once
	_, err = c.Converter()
	require.NoError(t, err)

	c.Config().Output.Format = "toml"
	_, err = c.Converter()
	assert.Error(t, err)
}

func TestContainer_Configure(t *testing.T) {
	c := NewContainer()
	cfg := config.DefaultConfig()
	cfg.Codec.StrictEnums = true
	logger := zap.NewExample()

	c.Configure(cfg, logger)
	assert.Same(t, cfg, c.Config())
	assert.Same(t, logger, c.Logger())

	p := preset.Default()
	p.Unit = 42
	_, err := c.Codec().Encode(p)
	assert.Error(t, err)

	c.Configure(nil, nil)
	assert.Same(t, cfg, c.Config())
}

func TestContainer_OpenArchive(t *testing.T) {
	c := NewContainer()
	c.Config().Archive.DataDir = filepath.Join(t.TempDir(), "a", "b")

	a, err := c.OpenArchive()
	require.NoError(t, err)
	defer a.Close()
	assert.DirExists(t, c.Config().Archive.DataDir)

	server, err := c.APIServer(a)
	require.NoError(t, err)
	assert.NotNil(t, server)

	server, err = c.APIServer(nil)
	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestContainer_ServerConfig(t *testing.T) {
	c := NewContainer()
	c.Config().Server = config.Server{Port: 9300, Bind: "0.0.0.0", APIKey: "k"}
	assert.Equal(t, api.ServerConfig{Port: 9300, Bind: "0.0.0.0", APIKey: "k"}, c.ServerConfig())
}

func TestContainer_WriteMetrics(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.WriteMetrics(), "no textfile configured")

	_, err := c.Converter()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tinyprs.prom")
	c.Config().Metrics.Textfile = path
	require.NoError(t, c.WriteMetrics())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tinyprs_checksum_failures_total 0")
}
