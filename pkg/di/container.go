// Package di provides dependency injection container
package di

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/api" //nolint:depguard
	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/config"
	"github.com/ssargent/tinyprs/pkg/convert"
	"github.com/ssargent/tinyprs/pkg/storage"
)

// Container holds all the dependencies for the application
type Container struct {
	config        *config.Config
	logger        *zap.Logger
	registry      *prometheus.Registry
	serverFactory api.ServerFactory

	metricsOnce    sync.Once
	convertMetrics *convert.Metrics
	apiMetrics     *api.Metrics
}

// NewContainer creates a new dependency injection container with the
// default configuration and a no-op logger
func NewContainer() *Container {
	return &Container{
		config:        config.DefaultConfig(),
		logger:        zap.NewNop(),
		registry:      prometheus.NewRegistry(),
		serverFactory: api.NewServerFactory(),
	}
}

// Configure replaces the configuration and logger
func (c *Container) Configure(cfg *config.Config, logger *zap.Logger) {
	if cfg != nil {
		c.config = cfg
	}
	if logger != nil {
		c.logger = logger
	}
}

// Config returns the active configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the application logger
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Registry returns the Prometheus registry shared by all components
func (c *Container) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Container) initMetrics() {
	c.metricsOnce.Do(func() {
		c.convertMetrics = convert.NewMetrics(c.registry)
		c.apiMetrics = api.NewMetrics(c.registry)
	})
}

// Codec returns a preset codec configured from the codec section
func (c *Container) Codec() *codec.PresetCodec {
	return codec.NewPresetCodec(codec.WithStrictEnums(c.config.Codec.StrictEnums))
}

// Converter returns a converter configured from the output section
func (c *Container) Converter() (*convert.Converter, error) {
	format, err := convert.ParseFormat(c.config.Output.Format)
	if err != nil {
		return nil, err
	}
	c.initMetrics()
	return convert.NewConverter(c.Codec(), convert.Options{
		Format:        format,
		Indent:        strings.Repeat(" ", max(c.config.Output.Indent, 0)),
		WriteDocument: c.config.Output.WriteDocument,
		Logger:        c.logger,
		Metrics:       c.convertMetrics,
	}), nil
}

// OpenArchive opens the preset archive in the configured data directory
func (c *Container) OpenArchive() (*storage.Archive, error) {
	dir := c.config.Archive.DataDir
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create archive dir: %w", err)
	}
	return storage.NewArchive(dir, c.Codec())
}

// APIServer builds the API server. archive may be nil.
func (c *Container) APIServer(archive *storage.Archive) (*api.Server, error) {
	conv, err := c.Converter()
	if err != nil {
		return nil, err
	}
	var pa api.PresetArchive
	if archive != nil {
		pa = archive
	}
	return api.NewServer(c.Codec(), conv, pa, c.ServerConfig(), c.apiMetrics, c.logger), nil
}

// ServerConfig returns the API server settings
func (c *Container) ServerConfig() api.ServerConfig {
	return api.ServerConfig{
		Port:   c.config.Server.Port,
		Bind:   c.config.Server.Bind,
		APIKey: c.config.Server.APIKey,
	}
}

// WriteMetrics writes the registry to the configured textfile, if any
func (c *Container) WriteMetrics() error {
	if c.config.Metrics.Textfile == "" {
		return nil
	}
	return convert.WriteTextfile(c.config.Metrics.Textfile, c.registry)
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
