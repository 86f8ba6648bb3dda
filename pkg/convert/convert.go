// Package convert turns preset files into documents and documents into preset files.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/document"
	"github.com/ssargent/tinyprs/pkg/preset"
)

// ErrUnsupportedExtension is returned for input files that are neither presets nor documents
var ErrUnsupportedExtension = errors.New("convert: unsupported file extension")

// ErrUnknownFormat is returned by ParseFormat
var ErrUnknownFormat = errors.New("convert: unknown document format")

// Format is a document dialect
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Direction of a conversion
type Direction string

const (
	// Export reads a binary preset and produces a document
	Export Direction = "export"
	// Import merges a document into the default preset and produces a binary preset
	Import Direction = "import"
)

// Options configures a Converter
type Options struct {
	Format        Format // document format produced by exports
	Indent        string // JSON indentation, empty for compact output
	WriteDocument bool   // write exported documents next to the source file
	Logger        *zap.Logger
	Metrics       *Metrics
}

// Result describes one converted file
type Result struct {
	Path      string
	Direction Direction
	Output    string // file written, empty if nothing was written
	Document  []byte // exported document, export only
	Checksum  uint32
	Ignored   []string // document keys outside the schema, import only
}

// Converter converts files using a shared codec. It is safe for concurrent use.
type Converter struct {
	codec   *codec.PresetCodec
	opts    Options
	logger  *zap.Logger
	metrics *Metrics
}

// NewConverter creates a converter. Missing options get defaults: JSON
// output, a no-op logger and unregistered metrics.
func NewConverter(c *codec.PresetCodec, opts Options) *Converter {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Converter{codec: c, opts: opts, logger: logger, metrics: metrics}
}

// ConvertFile converts path according to its extension: .prs files are
// exported, .json, .yaml and .yml files are imported into path + ".prs".
func (c *Converter) ConvertFile(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".prs":
		return c.exportFile(path)
	case ".json":
		return c.importFile(path, FormatJSON)
	case ".yaml", ".yml":
		return c.importFile(path, FormatYAML)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}
}

func (c *Converter) exportFile(path string) (res Result, err error) {
	start := time.Now()
	res = Result{Path: path, Direction: Export}
	defer func() { c.finish(res, start, err) }()

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}
	doc, checksum, err := c.ExportBytes(data)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	if extra := len(data) - codec.RecordSize; extra > 0 {
		c.logger.Warn("ignoring bytes after preset record",
			zap.String("path", path),
			zap.Int("trailing_bytes", extra))
	}
	res.Document = doc
	res.Checksum = checksum

	if c.opts.WriteDocument {
		out := strings.TrimSuffix(path, filepath.Ext(path)) + "." + string(c.opts.Format)
		if err := c.write(out, doc); err != nil {
			return res, err
		}
		res.Output = out
	}
	return res, nil
}

func (c *Converter) importFile(path string, format Format) (res Result, err error) {
	start := time.Now()
	res = Result{Path: path, Direction: Import}
	defer func() { c.finish(res, start, err) }()

	doc, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}
	data, rep, err := c.ImportBytes(doc, format)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	res.Ignored = rep.Ignored
	res.Checksum = codec.Checksum(data[:codec.ChecksumRange])
	if len(rep.Ignored) > 0 {
		c.logger.Warn("ignoring unknown document keys",
			zap.String("path", path),
			zap.Strings("keys", rep.Ignored))
	}

	out := path + ".prs"
	if err := c.write(out, data); err != nil {
		return res, err
	}
	res.Output = out
	return res, nil
}

// ExportBytes decodes a binary preset and renders it in the configured format
func (c *Converter) ExportBytes(data []byte) ([]byte, uint32, error) {
	return c.ExportBytesAs(data, c.opts.Format)
}

// ExportBytesAs is ExportBytes with an explicit document format
func (c *Converter) ExportBytesAs(data []byte, format Format) ([]byte, uint32, error) {
	p, err := c.codec.Decode(data)
	if err != nil {
		if errors.Is(err, codec.ErrChecksumMismatch) {
			c.metrics.RecordChecksumFailure()
		}
		return nil, 0, err
	}
	doc, err := c.RenderAs(p, format)
	if err != nil {
		return nil, 0, err
	}
	return doc, codec.Checksum(data[:codec.ChecksumRange]), nil
}

// Render formats p as a document in the configured format
func (c *Converter) Render(p *preset.Preset) ([]byte, error) {
	return c.RenderAs(p, c.opts.Format)
}

// RenderAs formats p as a document in the given format
func (c *Converter) RenderAs(p *preset.Preset, format Format) ([]byte, error) {
	if format == FormatYAML {
		return document.ExportYAML(p)
	}
	if c.opts.Indent != "" {
		return document.ExportIndent(p, "", c.opts.Indent)
	}
	return document.Export(p)
}

// ImportPreset merges a document into the default preset
func (c *Converter) ImportPreset(doc []byte, format Format) (*preset.Preset, document.Report, error) {
	p := preset.Default()

	var (
		rep document.Report
		err error
	)
	if format == FormatYAML {
		rep, err = document.MergeYAML(p, doc)
	} else {
		rep, err = document.Merge(p, doc)
	}
	if err != nil {
		return nil, rep, err
	}
	return p, rep, nil
}

// ImportBytes merges a document into the default preset and encodes the result
func (c *Converter) ImportBytes(doc []byte, format Format) ([]byte, document.Report, error) {
	p, rep, err := c.ImportPreset(doc, format)
	if err != nil {
		return nil, rep, err
	}

	data, err := c.codec.Encode(p)
	if err != nil {
		return nil, rep, err
	}
	return data, rep, nil
}

func (c *Converter) write(path string, data []byte) error {
	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return err
	}
	c.metrics.RecordBytesWritten(len(data))
	return nil
}

func (c *Converter) finish(res Result, start time.Time, err error) {
	c.metrics.RecordConversion(res.Direction, err == nil, time.Since(start))
	if err != nil {
		c.logger.Error("conversion failed",
			zap.String("path", res.Path),
			zap.String("direction", string(res.Direction)),
			zap.Error(err))
		return
	}
	c.logger.Info("converted preset",
		zap.String("path", res.Path),
		zap.String("direction", string(res.Direction)),
		zap.String("output", res.Output),
		zap.String("checksum", fmt.Sprintf("0x%08X", res.Checksum)))
}
