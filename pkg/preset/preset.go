// Package preset defines the in-memory model of a tinySA Ultra preset.
//
// A Preset mirrors the instrument's setting_t structure field for field. The
// byte layout lives in the codec package; this package only knows the
// fields, their fixed collection sizes and their documented defaults.
package preset

const (
	// Magic identifies a preset record (SETTING_MAGIC in the firmware)
	Magic uint32 = 0x434F4E6D

	TracesMax        = 4
	ReferenceMax     = TracesMax
	MarkersMax       = 8
	LimitsMax        = 8
	BandsMax         = 8
	BandNameSize     = 9
	PresetNameLength = 10
)

// Band is a named frequency band annotation
type Band struct {
	Name       string
	Enabled    bool
	Start      uint64
	End        uint64
	Level      float32
	StartIndex int32
	StopIndex  int32
}

// Marker is an on-screen marker
type Marker struct {
	Type      MarkerType
	Enabled   MarkerState
	Ref       uint8
	Trace     uint8
	Index     uint8
	Frequency uint64
}

// Limit is a single point of a reference limit line
type Limit struct {
	Enabled   uint8
	Level     float32
	Frequency uint64
	Index     int16
}

// Preset is the complete instrument configuration record.
//
// Fixed-size collections are slices so that a document merge can produce a
// wrongly sized collection; the codec rejects those before encoding.
type Preset struct {
	AutoRefLevel    bool
	AutoAttenuation bool
	MirrorMasking   bool
	TrackingOutput  bool
	Mute            bool
	AutoIF          bool
	Sweep           bool
	Pulse           bool
	Stored          []bool
	Normalized      []bool
	Bands           []Band

	Mode             Mode
	BelowIF          Switch
	Unit             Unit
	AGC              Switch
	LNA              Switch
	Modulation       Modulation
	Trigger          Trigger
	TriggerMode      Trigger
	TriggerDirection Trigger
	TriggerBeep      uint8
	TriggerAutoSave  uint8
	StepDelayMode    StepDelayMode
	Waterfall        Waterfall
	LevelMeter       uint8
	Average          []uint8
	Subtract         []uint8

	Measurement       Measurement
	SpurRemoval       Switch
	DisableCorrection uint8
	NormalizedTrace   int8
	Listen            uint8
	Tracking          int8 // -1..1
	AttenStep         uint8
	ActiveMarker      int8
	UnitScaleIndex    uint8
	Noise             uint8
	LODrive           uint8
	RXDrive           uint8
	Test              uint8
	Harmonic          uint8
	FastSpeedup       uint8
	FasterSpeedup     uint8
	Traces            uint8 // enabled trace bit flags
	DrawLine          uint8
	LockDisplay       uint8
	JogJump           uint8
	MultiBand         uint8
	MultiTrace        uint8
	TriggerTrace      uint8
	Repeat            uint16
	LinearityStep     uint16
	SweepPoints       uint16
	AttenuateX2       int16
	StepDelay         uint16
	OffsetDelay       uint16
	FreqMode          uint16
	Refer             int16 // -1 disabled

	ModulationDepthX100       uint16
	ModulationDeviationDiv100 uint16
	Decay                     int32
	Attack                    int32
	SliderPosition            int32
	SliderSpan                uint64
	RBWx10                    uint32
	VBWx100                   uint32
	ScanAfterDirty            []uint32

	ModulationFrequency float32
	RefLevel            float32
	Scale               float32
	ExternalGain        float32
	TriggerLevel        float32
	Level               float32
	LevelSweep          float32
	UnitScale           float32
	NormalizeLevel      float32

	FrequencyStep   uint64
	Frequency0      uint64
	Frequency1      uint64
	FrequencyVar    uint64
	FrequencyIF     uint64
	FrequencyOffset uint64
	TraceScale      float32
	TraceRefPos     float32

	Markers []Marker
	Limits  [][]Limit // LimitsMax rows of ReferenceMax entries

	SweepTimeUs           uint32
	MeasureSweepTimeUs    uint32
	ActualSweepTimeUs     uint32
	AdditionalStepDelayUs uint32
	TriggerGrid           uint32
	Ultra                 uint8
	ExtraLNA              bool
	R                     int32
	ExpAver               int32
	IncreasedR            bool
	MixerOutput           bool
	Interval              uint32
	Name                  string
	DBuV                  bool
	TestArgument          int64
}

// Clone returns a deep copy of p
func (p *Preset) Clone() *Preset {
	c := *p
	c.Stored = append([]bool(nil), p.Stored...)
	c.Normalized = append([]bool(nil), p.Normalized...)
	c.Bands = append([]Band(nil), p.Bands...)
	c.Average = append([]uint8(nil), p.Average...)
	c.Subtract = append([]uint8(nil), p.Subtract...)
	c.ScanAfterDirty = append([]uint32(nil), p.ScanAfterDirty...)
	c.Markers = append([]Marker(nil), p.Markers...)
	if p.Limits != nil {
		c.Limits = make([][]Limit, len(p.Limits))
		for i, row := range p.Limits {
			c.Limits[i] = append([]Limit(nil), row...)
		}
	}
	return &c
}
