// Package document converts presets to and from editable JSON and YAML documents.
//
// Export writes every field in a fixed order. Merge applies a possibly
// partial document on top of an existing preset: only keys named in the
// schema are applied and everything else in the preset is left alone, so a
// hand-trimmed export can be merged into preset.Default().
//
// NaN and infinite floats are written to JSON as the strings "NaN",
// "Infinity" and "-Infinity", and to YAML as .nan, .inf and -.inf. Merge
// accepts either form.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/tinyprs/pkg/preset"
)

var (
	// ErrNotObject is returned when a document's top level is not an object
	ErrNotObject = errors.New("document: top level is not an object")
	// ErrTypeMismatch is wrapped by FieldError when a value has the wrong type
	ErrTypeMismatch = errors.New("document: type mismatch")
	// ErrNull is wrapped by FieldError when a known key is null
	ErrNull = errors.New("document: null value")
	// ErrSyntax is returned when a document cannot be parsed at all
	ErrSyntax = errors.New("document: syntax error")
)

// FieldError identifies the document path of a value that could not be applied
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("document: field %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Report describes what a merge did with the document's keys
type Report struct {
	// Applied lists top-level keys that were merged
	Applied []string
	// Ignored lists paths of keys that are not part of the schema
	Ignored []string
}

// Export renders p as a compact JSON document
func Export(p *preset.Preset) ([]byte, error) {
	return json.Marshal(PresetSchema.export(p))
}

// ExportIndent renders p as an indented JSON document
func ExportIndent(p *preset.Preset, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(PresetSchema.export(p), prefix, indent)
}

// ExportYAML renders p as a YAML document with keys in export order
func ExportYAML(p *preset.Preset) ([]byte, error) {
	node, err := yamlNode(PresetSchema.export(p))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Merge applies a JSON document to p. On error p is left unchanged.
func Merge(p *preset.Preset, data []byte) (Report, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Report{}, fmt.Errorf("%w: invalid JSON: %w", ErrSyntax, err)
	}
	if kindOf(raw) != '{' {
		return Report{}, ErrNotObject
	}

	var rep Report
	work := p.Clone()
	if err := PresetSchema.mergeObject(work, raw, "", &rep); err != nil {
		return Report{}, err
	}
	sort.Strings(rep.Ignored)
	*p = *work
	return rep, nil
}

// MergeYAML applies a YAML document to p with the same rules as Merge
func MergeYAML(p *preset.Preset, data []byte) (Report, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Report{}, fmt.Errorf("%w: invalid YAML: %w", ErrSyntax, err)
	}
	if _, ok := v.(map[string]any); !ok {
		return Report{}, ErrNotObject
	}
	data, err := json.Marshal(jsonSafe(v))
	if err != nil {
		return Report{}, fmt.Errorf("document: convert YAML: %w", err)
	}
	return Merge(p, data)
}
