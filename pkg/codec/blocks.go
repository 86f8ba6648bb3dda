package codec

import "github.com/ssargent/tinyprs/pkg/preset"

// decodeFields reads everything between the magic and the checksum, in
// record order. Errors are left in f.err.
func decodeFields(f *fieldReader) *preset.Preset {
	p := &preset.Preset{}

	p.AutoRefLevel = f.bool()
	p.AutoAttenuation = f.bool()
	p.MirrorMasking = f.bool()
	p.TrackingOutput = f.bool()
	p.Mute = f.bool()
	p.AutoIF = f.bool()
	p.Sweep = f.bool()
	p.Pulse = f.bool()

	p.Stored = make([]bool, preset.TracesMax)
	for i := range p.Stored {
		p.Stored[i] = f.bool()
	}
	p.Normalized = make([]bool, preset.TracesMax)
	for i := range p.Normalized {
		p.Normalized[i] = f.bool()
	}
	f.skip(4)

	p.Bands = make([]preset.Band, preset.BandsMax)
	for i := range p.Bands {
		p.Bands[i] = decodeBand(f)
	}

	p.Mode = preset.Mode(f.u8())
	p.BelowIF = preset.Switch(f.u8())
	p.Unit = preset.Unit(f.u8())
	p.AGC = preset.Switch(f.u8())
	p.LNA = preset.Switch(f.u8())
	p.Modulation = preset.Modulation(f.u8())
	p.Trigger = preset.Trigger(f.u8())
	p.TriggerMode = preset.Trigger(f.u8())
	p.TriggerDirection = preset.Trigger(f.u8())
	p.TriggerBeep = f.u8()
	p.TriggerAutoSave = f.u8()
	p.StepDelayMode = preset.StepDelayMode(f.u8())
	p.Waterfall = preset.Waterfall(f.u8())
	p.LevelMeter = f.u8()

	p.Average = make([]uint8, preset.TracesMax)
	for i := range p.Average {
		p.Average[i] = f.u8()
	}
	p.Subtract = make([]uint8, preset.TracesMax)
	for i := range p.Subtract {
		p.Subtract[i] = f.u8()
	}

	p.Measurement = preset.Measurement(f.u8())
	p.SpurRemoval = preset.Switch(f.u8())
	p.DisableCorrection = f.u8()
	p.NormalizedTrace = f.i8()
	p.Listen = f.u8()
	p.Tracking = f.i8()
	p.AttenStep = f.u8()
	p.ActiveMarker = f.i8()
	p.UnitScaleIndex = f.u8()
	p.Noise = f.u8()
	p.LODrive = f.u8()
	p.RXDrive = f.u8()
	p.Test = f.u8()
	p.Harmonic = f.u8()
	p.FastSpeedup = f.u8()
	p.FasterSpeedup = f.u8()
	p.Traces = f.u8()
	p.DrawLine = f.u8()
	p.LockDisplay = f.u8()
	p.JogJump = f.u8()
	p.MultiBand = f.u8()
	p.MultiTrace = f.u8()
	p.TriggerTrace = f.u8()
	f.skip(1)
	p.Repeat = f.u16()
	p.LinearityStep = f.u16()
	p.SweepPoints = f.u16()
	p.AttenuateX2 = f.i16()
	p.StepDelay = f.u16()
	p.OffsetDelay = f.u16()
	p.FreqMode = f.u16()
	p.Refer = f.i16()
	p.ModulationDepthX100 = f.u16()
	p.ModulationDeviationDiv100 = f.u16()
	f.skip(2)
	p.Decay = f.i32()
	p.Attack = f.i32()
	p.SliderPosition = f.i32()
	p.SliderSpan = f.u64()
	p.RBWx10 = f.u32()
	p.VBWx100 = f.u32()

	p.ScanAfterDirty = make([]uint32, preset.TracesMax)
	for i := range p.ScanAfterDirty {
		p.ScanAfterDirty[i] = f.u32()
	}

	p.ModulationFrequency = f.f32()
	p.RefLevel = f.f32()
	p.Scale = f.f32()
	p.ExternalGain = f.f32()
	p.TriggerLevel = f.f32()
	p.Level = f.f32()
	p.LevelSweep = f.f32()
	p.UnitScale = f.f32()
	p.NormalizeLevel = f.f32()
	f.skip(4)
	p.FrequencyStep = f.u64()
	p.Frequency0 = f.u64()
	p.Frequency1 = f.u64()
	p.FrequencyVar = f.u64()
	p.FrequencyIF = f.u64()
	p.FrequencyOffset = f.u64()
	p.TraceScale = f.f32()
	p.TraceRefPos = f.f32()

	p.Markers = make([]preset.Marker, preset.MarkersMax)
	for i := range p.Markers {
		p.Markers[i] = decodeMarker(f)
	}

	p.Limits = make([][]preset.Limit, preset.LimitsMax)
	for i := range p.Limits {
		row := make([]preset.Limit, preset.ReferenceMax)
		for j := range row {
			row[j] = decodeLimit(f)
		}
		p.Limits[i] = row
	}

	p.SweepTimeUs = f.u32()
	p.MeasureSweepTimeUs = f.u32()
	p.ActualSweepTimeUs = f.u32()
	p.AdditionalStepDelayUs = f.u32()
	p.TriggerGrid = f.u32()
	p.Ultra = f.u8()
	p.ExtraLNA = f.bool()
	f.skip(2)
	p.R = f.i32()
	p.ExpAver = f.i32()
	p.IncreasedR = f.bool()
	p.MixerOutput = f.bool()
	f.skip(2)
	p.Interval = f.u32()
	p.Name = decodeName(f.bytes(preset.PresetNameLength))
	p.DBuV = f.bool()
	f.skip(5)
	p.TestArgument = f.i64()

	return p
}

// Band: name[9] enabled pad[6] start end level start_index stop_index pad[4]
func decodeBand(f *fieldReader) preset.Band {
	var b preset.Band
	b.Name = decodeName(f.bytes(preset.BandNameSize))
	b.Enabled = f.bool()
	f.skip(6)
	b.Start = f.u64()
	b.End = f.u64()
	b.Level = f.f32()
	b.StartIndex = f.i32()
	b.StopIndex = f.i32()
	f.skip(4)
	return b
}

// Marker: mtype enabled ref trace index pad[3] frequency
func decodeMarker(f *fieldReader) preset.Marker {
	var m preset.Marker
	m.Type = preset.MarkerType(f.u8())
	m.Enabled = preset.MarkerState(f.u8())
	m.Ref = f.u8()
	m.Trace = f.u8()
	m.Index = f.u8()
	f.skip(3)
	m.Frequency = f.u64()
	return m
}

// Limit: enabled pad[3] level frequency index pad[6]
func decodeLimit(f *fieldReader) preset.Limit {
	var l preset.Limit
	l.Enabled = f.u8()
	f.skip(3)
	l.Level = f.f32()
	l.Frequency = f.u64()
	l.Index = f.i16()
	f.skip(6)
	return l
}

// encodeFields mirrors decodeFields. Counts and names must already be checked.
func encodeFields(w *Writer, p *preset.Preset, names encodedNames) {
	w.PutBool(p.AutoRefLevel)
	w.PutBool(p.AutoAttenuation)
	w.PutBool(p.MirrorMasking)
	w.PutBool(p.TrackingOutput)
	w.PutBool(p.Mute)
	w.PutBool(p.AutoIF)
	w.PutBool(p.Sweep)
	w.PutBool(p.Pulse)

	for _, v := range p.Stored {
		w.PutBool(v)
	}
	for _, v := range p.Normalized {
		w.PutBool(v)
	}
	w.Pad(4)

	for i, b := range p.Bands {
		encodeBand(w, b, names.bands[i])
	}

	w.PutUint8(uint8(p.Mode))
	w.PutUint8(uint8(p.BelowIF))
	w.PutUint8(uint8(p.Unit))
	w.PutUint8(uint8(p.AGC))
	w.PutUint8(uint8(p.LNA))
	w.PutUint8(uint8(p.Modulation))
	w.PutUint8(uint8(p.Trigger))
	w.PutUint8(uint8(p.TriggerMode))
	w.PutUint8(uint8(p.TriggerDirection))
	w.PutUint8(p.TriggerBeep)
	w.PutUint8(p.TriggerAutoSave)
	w.PutUint8(uint8(p.StepDelayMode))
	w.PutUint8(uint8(p.Waterfall))
	w.PutUint8(p.LevelMeter)

	w.PutBytes(p.Average)
	w.PutBytes(p.Subtract)

	w.PutUint8(uint8(p.Measurement))
	w.PutUint8(uint8(p.SpurRemoval))
	w.PutUint8(p.DisableCorrection)
	w.PutInt8(p.NormalizedTrace)
	w.PutUint8(p.Listen)
	w.PutInt8(p.Tracking)
	w.PutUint8(p.AttenStep)
	w.PutInt8(p.ActiveMarker)
	w.PutUint8(p.UnitScaleIndex)
	w.PutUint8(p.Noise)
	w.PutUint8(p.LODrive)
	w.PutUint8(p.RXDrive)
	w.PutUint8(p.Test)
	w.PutUint8(p.Harmonic)
	w.PutUint8(p.FastSpeedup)
	w.PutUint8(p.FasterSpeedup)
	w.PutUint8(p.Traces)
	w.PutUint8(p.DrawLine)
	w.PutUint8(p.LockDisplay)
	w.PutUint8(p.JogJump)
	w.PutUint8(p.MultiBand)
	w.PutUint8(p.MultiTrace)
	w.PutUint8(p.TriggerTrace)
	w.Pad(1)
	w.PutUint16(p.Repeat)
	w.PutUint16(p.LinearityStep)
	w.PutUint16(p.SweepPoints)
	w.PutInt16(p.AttenuateX2)
	w.PutUint16(p.StepDelay)
	w.PutUint16(p.OffsetDelay)
	w.PutUint16(p.FreqMode)
	w.PutInt16(p.Refer)
	w.PutUint16(p.ModulationDepthX100)
	w.PutUint16(p.ModulationDeviationDiv100)
	w.Pad(2)
	w.PutInt32(p.Decay)
	w.PutInt32(p.Attack)
	w.PutInt32(p.SliderPosition)
	w.PutUint64(p.SliderSpan)
	w.PutUint32(p.RBWx10)
	w.PutUint32(p.VBWx100)

	for _, v := range p.ScanAfterDirty {
		w.PutUint32(v)
	}

	w.PutFloat32(p.ModulationFrequency)
	w.PutFloat32(p.RefLevel)
	w.PutFloat32(p.Scale)
	w.PutFloat32(p.ExternalGain)
	w.PutFloat32(p.TriggerLevel)
	w.PutFloat32(p.Level)
	w.PutFloat32(p.LevelSweep)
	w.PutFloat32(p.UnitScale)
	w.PutFloat32(p.NormalizeLevel)
	w.Pad(4)
	w.PutUint64(p.FrequencyStep)
	w.PutUint64(p.Frequency0)
	w.PutUint64(p.Frequency1)
	w.PutUint64(p.FrequencyVar)
	w.PutUint64(p.FrequencyIF)
	w.PutUint64(p.FrequencyOffset)
	w.PutFloat32(p.TraceScale)
	w.PutFloat32(p.TraceRefPos)

	for _, m := range p.Markers {
		encodeMarker(w, m)
	}
	for _, row := range p.Limits {
		for _, l := range row {
			encodeLimit(w, l)
		}
	}

	w.PutUint32(p.SweepTimeUs)
	w.PutUint32(p.MeasureSweepTimeUs)
	w.PutUint32(p.ActualSweepTimeUs)
	w.PutUint32(p.AdditionalStepDelayUs)
	w.PutUint32(p.TriggerGrid)
	w.PutUint8(p.Ultra)
	w.PutBool(p.ExtraLNA)
	w.Pad(2)
	w.PutInt32(p.R)
	w.PutInt32(p.ExpAver)
	w.PutBool(p.IncreasedR)
	w.PutBool(p.MixerOutput)
	w.Pad(2)
	w.PutUint32(p.Interval)
	w.PutBytes(names.preset)
	w.PutBool(p.DBuV)
	w.Pad(5)
	w.PutInt64(p.TestArgument)
}

func encodeBand(w *Writer, b preset.Band, name []byte) {
	w.PutBytes(name)
	w.PutBool(b.Enabled)
	w.Pad(6)
	w.PutUint64(b.Start)
	w.PutUint64(b.End)
	w.PutFloat32(b.Level)
	w.PutInt32(b.StartIndex)
	w.PutInt32(b.StopIndex)
	w.Pad(4)
}

func encodeMarker(w *Writer, m preset.Marker) {
	w.PutUint8(uint8(m.Type))
	w.PutUint8(uint8(m.Enabled))
	w.PutUint8(m.Ref)
	w.PutUint8(m.Trace)
	w.PutUint8(m.Index)
	w.Pad(3)
	w.PutUint64(m.Frequency)
}

func encodeLimit(w *Writer, l preset.Limit) {
	w.PutUint8(l.Enabled)
	w.Pad(3)
	w.PutFloat32(l.Level)
	w.PutUint64(l.Frequency)
	w.PutInt16(l.Index)
	w.Pad(6)
}
