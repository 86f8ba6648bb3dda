package preset

// Mode is the analyzer operating mode
type Mode uint8

const (
	ModeLow Mode = iota
	ModeHigh
	ModeGenLow
	ModeGenHigh
	ModeUltra
)

func (m Mode) Valid() bool { return m <= ModeUltra }

// Switch is a tri-state setting with automatic variants (below_IF, agc, lna, spur_removal)
type Switch uint8

const (
	SwitchOff Switch = iota
	SwitchOn
	SwitchAutoOff
	SwitchAutoOn
)

func (s Switch) Valid() bool { return s <= SwitchAutoOn }

// Unit is the display level unit
type Unit uint8

const (
	UnitDBm Unit = iota
	UnitDBmV
	UnitDBuV
	UnitRaw
	UnitVolt
	UnitVpp
	UnitWatt
	UnitDBc
)

func (u Unit) Valid() bool { return u <= UnitDBc }

// Modulation is the generator modulation
type Modulation uint8

const (
	ModulationNone Modulation = iota
	ModulationAM
	ModulationNFM
	ModulationNFM2
	ModulationNFM3
	ModulationWFM
	ModulationExternal
)

func (m Modulation) Valid() bool { return m <= ModulationExternal }

// Trigger covers the trigger, trigger_mode and trigger_direction values,
// which share one numbering in the firmware.
type Trigger uint8

const (
	TriggerAuto Trigger = iota
	TriggerNormal
	TriggerSingle
	TriggerDone
	TriggerUp
	TriggerDown
	TriggerMode
	TriggerPre
	TriggerPost
	TriggerMid
	TriggerBeep
	TriggerAutoSave
)

func (t Trigger) Valid() bool { return t <= TriggerAutoSave }

// StepDelayMode selects the sweep speed trade-off
type StepDelayMode uint8

const (
	StepDelayNormal StepDelayMode = iota
	StepDelayPrecise
	StepDelayFast
	StepDelayNoiseSource
	StepDelayManual
)

func (s StepDelayMode) Valid() bool { return s <= StepDelayManual }

// Waterfall is the waterfall display size
type Waterfall uint8

const (
	WaterfallOff Waterfall = iota
	WaterfallSmall
	WaterfallBig
	WaterfallSuper
)

func (w Waterfall) Valid() bool { return w <= WaterfallSuper }

// Measurement is the active measurement mode
type Measurement uint8

const (
	MeasurementOff Measurement = iota
	MeasurementIMD
	MeasurementOIP3
	MeasurementPhaseNoise
	MeasurementSNR
	MeasurementPassBand
	MeasurementLinearity
	MeasurementAM
	MeasurementFM
	MeasurementTHD
	MeasurementCP
	MeasurementNFTinySA
	MeasurementNFStore
	MeasurementNFValidate
	MeasurementNFAmplifier
	MeasurementDeconv
)

func (m Measurement) Valid() bool { return m <= MeasurementDeconv }

// MarkerType is a bit set of marker behaviours
type MarkerType uint8

const (
	MarkerNormal    MarkerType = 0
	MarkerReference MarkerType = 1 << (iota - 1)
	MarkerDelta
	MarkerNoise
	MarkerStored
	MarkerAverage
	MarkerTracking
	MarkerDelete
)

const markerTypeMask = MarkerReference | MarkerDelta | MarkerNoise | MarkerStored |
	MarkerAverage | MarkerTracking | MarkerDelete

func (t MarkerType) Valid() bool { return t&^markerTypeMask == 0 }

// MarkerState is the marker enabled flag
type MarkerState uint8

const (
	MarkerDisabled MarkerState = iota
	MarkerEnabled
)

func (s MarkerState) Valid() bool { return s <= MarkerEnabled }
