package document

import (
	"fmt"
	"math"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSON has no literal for NaN or the infinities, so exported documents carry
// them as these strings. YAML documents use the native .nan and .inf.
const (
	tokenNaN    = "NaN"
	tokenInf    = "Infinity"
	tokenNegInf = "-Infinity"
)

// nonFinite is the exported form of a NaN or infinite float
type nonFinite string

func (n nonFinite) yamlNode() *yaml.Node {
	v := "-.inf"
	switch n {
	case tokenNaN:
		v = ".nan"
	case tokenInf:
		v = ".inf"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v}
}

func exportScalar(v any) any {
	var f float64
	switch t := v.(type) {
	case float32:
		f = float64(t)
	case float64:
		f = t
	default:
		return v
	}
	if tok, ok := floatToken(f); ok {
		return nonFinite(tok)
	}
	return v
}

func floatToken(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return tokenNaN, true
	case math.IsInf(f, 1):
		return tokenInf, true
	case math.IsInf(f, -1):
		return tokenNegInf, true
	}
	return "", false
}

// decodeFloat reads a JSON number or one of the non-finite tokens
func decodeFloat(raw json.RawMessage, path string) (float64, error) {
	if kindOf(raw) == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, &FieldError{Path: path, Err: fmt.Errorf("%w: %v", ErrTypeMismatch, err)}
		}
		switch s {
		case tokenNaN:
			return math.NaN(), nil
		case tokenInf:
			return math.Inf(1), nil
		case tokenNegInf:
			return math.Inf(-1), nil
		}
		return 0, &FieldError{Path: path, Err: fmt.Errorf("%w: %q is not a number", ErrTypeMismatch, s)}
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, &FieldError{Path: path, Err: fmt.Errorf("%w: %v", ErrTypeMismatch, err)}
	}
	return f, nil
}

func decodeFloat32(raw json.RawMessage, path string) (float32, error) {
	f, err := decodeFloat(raw, path)
	if err != nil {
		return 0, err
	}
	if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
		return 0, &FieldError{Path: path, Err: fmt.Errorf("%w: %g overflows float32", ErrTypeMismatch, f)}
	}
	return float32(f), nil
}

// jsonSafe replaces non-finite floats decoded from YAML with their JSON tokens
func jsonSafe(v any) any {
	switch t := v.(type) {
	case float64:
		if tok, ok := floatToken(t); ok {
			return tok
		}
	case map[string]any:
		for k, e := range t {
			t[k] = jsonSafe(e)
		}
	case []any:
		for i, e := range t {
			t[i] = jsonSafe(e)
		}
	}
	return v
}
