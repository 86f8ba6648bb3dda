package document

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// Shape describes how a field is exported and merged
type Shape int

const (
	// ShapeScalar is a single number, bool or string
	ShapeScalar Shape = iota
	// ShapeScalarArray is a fixed-length array of scalars, always replaced wholesale
	ShapeScalarArray
	// ShapeRecordArray is an array of nested records, merged element-wise when possible
	ShapeRecordArray
	// ShapeRecordGrid is an array of record arrays
	ShapeRecordGrid
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeScalarArray:
		return "scalar array"
	case ShapeRecordArray:
		return "record array"
	case ShapeRecordGrid:
		return "record grid"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Field is one named entry of a record schema
type Field[T any] struct {
	Key   string
	Shape Shape

	export func(*T) any
	merge  func(t *T, raw json.RawMessage, path string, rep *Report) error
}

// Schema is the ordered field list of a record type
type Schema[T any] []Field[T]

// Keys returns the document keys in export order
func (s Schema[T]) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}
	return keys
}

func (s Schema[T]) lookup(key string) (Field[T], bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (s Schema[T]) export(t *T) object {
	obj := make(object, 0, len(s))
	for _, f := range s {
		obj = append(obj, member{Key: f.Key, Value: f.export(t)})
	}
	return obj
}

// mergeObject applies the known keys of raw, which must be a JSON object
func (s Schema[T]) mergeObject(t *T, raw json.RawMessage, path string, rep *Report) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return &FieldError{Path: path, Err: fmt.Errorf("%w: %v", ErrTypeMismatch, err)}
	}
	for _, key := range sortedKeys(members) {
		f, ok := s.lookup(key)
		if !ok {
			rep.Ignored = append(rep.Ignored, join(path, key))
			continue
		}
		if err := f.merge(t, members[key], join(path, key), rep); err != nil {
			return err
		}
		if path == "" {
			rep.Applied = append(rep.Applied, key)
		}
	}
	return nil
}

func scalar[T, V any](key string, ptr func(*T) *V) Field[T] {
	return Field[T]{
		Key:    key,
		Shape:  ShapeScalar,
		export: func(t *T) any { return exportScalar(*ptr(t)) },
		merge: func(t *T, raw json.RawMessage, path string, _ *Report) error {
			return decodeValue(raw, path, ptr(t))
		},
	}
}

func scalarArray[T, V any](key string, ptr func(*T) *[]V) Field[T] {
	return Field[T]{
		Key:    key,
		Shape:  ShapeScalarArray,
		export: func(t *T) any {
			vals := *ptr(t)
			out := make(scalars, len(vals))
			for i, v := range vals {
				out[i] = exportScalar(v)
			}
			return out
		},
		merge: func(t *T, raw json.RawMessage, path string, _ *Report) error {
			elems, err := array(raw, path)
			if err != nil {
				return err
			}
			out := make([]V, len(elems))
			for i, e := range elems {
				if err := decodeValue(e, index(path, i), &out[i]); err != nil {
					return err
				}
			}
			*ptr(t) = out
			return nil
		},
	}
}

func recordArray[T, R any](key string, sub Schema[R], ptr func(*T) *[]R) Field[T] {
	return Field[T]{
		Key:   key,
		Shape: ShapeRecordArray,
		export: func(t *T) any {
			return exportRecords(sub, *ptr(t))
		},
		merge: func(t *T, raw json.RawMessage, path string, rep *Report) error {
			return mergeRecords(sub, ptr(t), raw, path, rep)
		},
	}
}

func recordGrid[T, R any](key string, sub Schema[R], ptr func(*T) *[][]R) Field[T] {
	return Field[T]{
		Key:   key,
		Shape: ShapeRecordGrid,
		export: func(t *T) any {
			rows := *ptr(t)
			out := make([]any, len(rows))
			for i, row := range rows {
				out[i] = exportRecords(sub, row)
			}
			return out
		},
		merge: func(t *T, raw json.RawMessage, path string, rep *Report) error {
			elems, err := array(raw, path)
			if err != nil {
				return err
			}
			rows := ptr(t)
			if len(elems) > 0 && len(elems) == len(*rows) && allKind(elems, '[') {
				for i, e := range elems {
					if err := mergeRecords(sub, &(*rows)[i], e, index(path, i), rep); err != nil {
						return err
					}
				}
				return nil
			}
			out := make([][]R, len(elems))
			for i, e := range elems {
				if err := mergeRecords(sub, &out[i], e, index(path, i), rep); err != nil {
					return err
				}
			}
			*rows = out
			return nil
		},
	}
}

func exportRecords[R any](sub Schema[R], recs []R) []object {
	out := make([]object, len(recs))
	for i := range recs {
		out[i] = sub.export(&recs[i])
	}
	return out
}

// mergeRecords merges element-wise when both sides have the same nonzero
// length and every element is an object. Otherwise the array is rebuilt from
// zero-valued records.
func mergeRecords[R any](sub Schema[R], dst *[]R, raw json.RawMessage, path string, rep *Report) error {
	elems, err := array(raw, path)
	if err != nil {
		return err
	}
	if len(elems) > 0 && len(elems) == len(*dst) && allKind(elems, '{') {
		for i, e := range elems {
			if err := sub.mergeObject(&(*dst)[i], e, index(path, i), rep); err != nil {
				return err
			}
		}
		return nil
	}

	out := make([]R, len(elems))
	for i, e := range elems {
		p := index(path, i)
		if kindOf(e) != '{' {
			return mismatch(p, "object")
		}
		if err := sub.mergeObject(&out[i], e, p, rep); err != nil {
			return err
		}
	}
	*dst = out
	return nil
}

func decodeValue[V any](raw json.RawMessage, path string, dst *V) error {
	if kindOf(raw) == 'n' {
		return &FieldError{Path: path, Err: ErrNull}
	}

	switch d := any(dst).(type) {
	case *float32:
		f, err := decodeFloat32(raw, path)
		if err != nil {
			return err
		}
		*d = f
		return nil
	case *float64:
		f, err := decodeFloat(raw, path)
		if err != nil {
			return err
		}
		*d = f
		return nil
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return &FieldError{Path: path, Err: fmt.Errorf("%w: %v", ErrTypeMismatch, err)}
	}
	*dst = v
	return nil
}

func array(raw json.RawMessage, path string) ([]json.RawMessage, error) {
	if kindOf(raw) != '[' {
		return nil, mismatch(path, "array")
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &FieldError{Path: path, Err: fmt.Errorf("%w: %v", ErrTypeMismatch, err)}
	}
	return elems, nil
}

func mismatch(path, want string) error {
	return &FieldError{Path: path, Err: fmt.Errorf("%w: want %s", ErrTypeMismatch, want)}
}

// kindOf returns the first significant byte of a JSON value: '{', '[', 'n', ...
func kindOf(raw json.RawMessage) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func allKind(elems []json.RawMessage, k byte) bool {
	for _, e := range elems {
		if kindOf(e) != k {
			return false
		}
	}
	return true
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
