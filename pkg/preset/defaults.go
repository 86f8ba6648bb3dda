package preset

// Default returns a preset populated with the firmware's reset values
func Default() *Preset {
	p := &Preset{
		AutoRefLevel:    true,
		AutoAttenuation: true,
		Mute:            true,
		AutoIF:          true,
		Stored:          make([]bool, TracesMax),
		Normalized:      make([]bool, TracesMax),
		Bands:           make([]Band, BandsMax),

		Mode:             ModeLow,
		BelowIF:          SwitchAutoOff,
		Unit:             UnitDBm,
		AGC:              SwitchAutoOn,
		LNA:              SwitchAutoOff,
		Modulation:       ModulationNone,
		Trigger:          TriggerAuto,
		TriggerMode:      TriggerMid,
		TriggerDirection: TriggerUp,
		StepDelayMode:    StepDelayNormal,
		Waterfall:        WaterfallOff,
		Average:          make([]uint8, TracesMax),
		Subtract:         make([]uint8, TracesMax),

		Measurement:     MeasurementOff,
		SpurRemoval:     SwitchAutoOff,
		NormalizedTrace: -1,
		Noise:           5,
		LODrive:         5,
		RXDrive:         12,
		Harmonic:        3,
		Traces:          1,
		TriggerTrace:    255,
		Repeat:          1,
		SweepPoints:     450,
		Refer:           -1,

		ModulationDepthX100:       80,
		ModulationDeviationDiv100: 30,
		Decay:                     20,
		Attack:                    1,
		SliderSpan:                100000,
		ScanAfterDirty:            make([]uint32, TracesMax),

		ModulationFrequency: 1000,
		RefLevel:            -10,
		Scale:               10,
		TriggerLevel:        -150,

		FrequencyStep:   1781737,
		Frequency1:      800000000,
		FrequencyIF:     977400000,
		FrequencyOffset: 100000000,
		TraceScale:      10,
		TraceRefPos:     -10,

		Markers: make([]Marker, MarkersMax),
		Limits:  make([][]Limit, LimitsMax),

		MixerOutput: true,
	}
	for i := range p.Limits {
		p.Limits[i] = make([]Limit, ReferenceMax)
	}
	return p
}
