package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/ssargent/tinyprs/pkg/preset"
)

// PresetCodec handles serialization and deserialization of preset records.
// A PresetCodec holds no per-call state and is safe for concurrent use.
type PresetCodec struct {
	strictEnums bool
}

// Option configures a PresetCodec
type Option func(*PresetCodec)

// WithStrictEnums makes Decode and Encode reject enumeration bytes outside
// their named range
func WithStrictEnums(strict bool) Option {
	return func(c *PresetCodec) {
		c.strictEnums = strict
	}
}

// NewPresetCodec creates a new preset codec instance
func NewPresetCodec(opts ...Option) *PresetCodec {
	c := &PresetCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verification reports the checksum state of a raw record
type Verification struct {
	Stored   uint32
	Computed uint32
}

// OK reports whether the stored checksum matches the contents
func (v Verification) OK() bool {
	return v.Stored == v.Computed
}

// Decode parses one record from the start of data. Bytes past the record are ignored.
func (c *PresetCodec) Decode(data []byte) (*preset.Preset, error) {
	r := NewReader(data)

	m, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if m != magic {
		return nil, &MagicError{Got: m}
	}

	f := &fieldReader{r: r}
	p := decodeFields(f)
	stored := f.u32()
	f.skip(4)
	if f.err != nil {
		return nil, f.err
	}

	if computed := Checksum(r.Span(0, ChecksumRange)); computed != stored {
		return nil, &ChecksumError{Stored: stored, Computed: computed}
	}

	if c.strictEnums {
		if err := validateEnums(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DecodeFrom reads a single record from r and decodes it
func (c *PresetCodec) DecodeFrom(r io.Reader) (*preset.Preset, error) {
	buf := make([]byte, RecordSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return c.Decode(buf[:n])
}

// Encode serializes p into a complete record including its checksum.
// Collection lengths and names are checked before any byte is produced.
func (c *PresetCodec) Encode(p *preset.Preset) ([]byte, error) {
	if err := checkCounts(p); err != nil {
		return nil, err
	}
	if c.strictEnums {
		if err := validateEnums(p); err != nil {
			return nil, err
		}
	}
	names, err := encodeNames(p)
	if err != nil {
		return nil, err
	}

	w := NewWriter(RecordSize)
	w.PutUint32(magic)
	encodeFields(w, p, names)

	w.PutUint32(Checksum(w.Bytes()[:ChecksumRange]))
	w.Pad(4)
	return w.Bytes(), nil
}

// EncodeTo encodes p and writes the record to w in a single call
func (c *PresetCodec) EncodeTo(w io.Writer, p *preset.Preset) error {
	data, err := c.Encode(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}

// Verify checks the stored checksum of a raw record without decoding its fields.
// A mismatch is reported through the returned Verification, not as an error.
func (c *PresetCodec) Verify(data []byte) (Verification, error) {
	r := NewReader(data)
	m, err := r.Uint32()
	if err != nil {
		return Verification{}, err
	}
	if m != magic {
		return Verification{}, &MagicError{Got: m}
	}
	if err := r.Skip(ChecksumRange - 4); err != nil {
		return Verification{}, err
	}
	stored, err := r.Uint32()
	if err != nil {
		return Verification{}, err
	}
	if err := r.Skip(4); err != nil {
		return Verification{}, err
	}
	return Verification{Stored: stored, Computed: Checksum(data[:ChecksumRange])}, nil
}

func checkCounts(p *preset.Preset) error {
	counts := []struct {
		field string
		want  int
		got   int
	}{
		{"stored", preset.TracesMax, len(p.Stored)},
		{"normalized", preset.TracesMax, len(p.Normalized)},
		{"bands", preset.BandsMax, len(p.Bands)},
		{"average", preset.TracesMax, len(p.Average)},
		{"subtract", preset.TracesMax, len(p.Subtract)},
		{"scan_after_dirty", preset.TracesMax, len(p.ScanAfterDirty)},
		{"markers", preset.MarkersMax, len(p.Markers)},
		{"limits", preset.LimitsMax, len(p.Limits)},
	}
	for _, c := range counts {
		if c.got != c.want {
			return &CountError{Field: c.field, Want: c.want, Got: c.got}
		}
	}
	for i, row := range p.Limits {
		if len(row) != preset.ReferenceMax {
			return &CountError{Field: fmt.Sprintf("limits[%d]", i), Want: preset.ReferenceMax, Got: len(row)}
		}
	}
	return nil
}

type encodedNames struct {
	bands  [][]byte
	preset []byte
}

func encodeNames(p *preset.Preset) (encodedNames, error) {
	var n encodedNames
	for i, b := range p.Bands {
		raw, err := encodeName(fmt.Sprintf("bands[%d].name", i), b.Name, preset.BandNameSize)
		if err != nil {
			return n, err
		}
		n.bands = append(n.bands, raw)
	}
	raw, err := encodeName("preset_name", p.Name, preset.PresetNameLength)
	if err != nil {
		return n, err
	}
	n.preset = raw
	return n, nil
}

func validateEnums(p *preset.Preset) error {
	checks := []struct {
		field string
		value uint8
		valid bool
	}{
		{"mode", uint8(p.Mode), p.Mode.Valid()},
		{"below_IF", uint8(p.BelowIF), p.BelowIF.Valid()},
		{"unit", uint8(p.Unit), p.Unit.Valid()},
		{"agc", uint8(p.AGC), p.AGC.Valid()},
		{"lna", uint8(p.LNA), p.LNA.Valid()},
		{"modulation", uint8(p.Modulation), p.Modulation.Valid()},
		{"trigger", uint8(p.Trigger), p.Trigger.Valid()},
		{"trigger_mode", uint8(p.TriggerMode), p.TriggerMode.Valid()},
		{"trigger_direction", uint8(p.TriggerDirection), p.TriggerDirection.Valid()},
		{"step_delay_mode", uint8(p.StepDelayMode), p.StepDelayMode.Valid()},
		{"waterfall", uint8(p.Waterfall), p.Waterfall.Valid()},
		{"measurement", uint8(p.Measurement), p.Measurement.Valid()},
		{"spur_removal", uint8(p.SpurRemoval), p.SpurRemoval.Valid()},
	}
	for _, c := range checks {
		if !c.valid {
			return &EnumError{Field: c.field, Value: c.value}
		}
	}
	for i, m := range p.Markers {
		if !m.Type.Valid() {
			return &EnumError{Field: fmt.Sprintf("_markers[%d].mtype", i), Value: uint8(m.Type)}
		}
		if !m.Enabled.Valid() {
			return &EnumError{Field: fmt.Sprintf("_markers[%d].enabled", i), Value: uint8(m.Enabled)}
		}
	}
	return nil
}
