package document

import "github.com/ssargent/tinyprs/pkg/preset"

// BandSchema lists the document keys of a band
var BandSchema = Schema[preset.Band]{
	scalar("name", func(b *preset.Band) *string { return &b.Name }),
	scalar("enabled", func(b *preset.Band) *bool { return &b.Enabled }),
	scalar("start", func(b *preset.Band) *uint64 { return &b.Start }),
	scalar("end", func(b *preset.Band) *uint64 { return &b.End }),
	scalar("level", func(b *preset.Band) *float32 { return &b.Level }),
	scalar("start_index", func(b *preset.Band) *int32 { return &b.StartIndex }),
	scalar("stop_index", func(b *preset.Band) *int32 { return &b.StopIndex }),
}

// MarkerSchema lists the document keys of a marker
var MarkerSchema = Schema[preset.Marker]{
	scalar("mtype", func(m *preset.Marker) *preset.MarkerType { return &m.Type }),
	scalar("enabled", func(m *preset.Marker) *preset.MarkerState { return &m.Enabled }),
	scalar("ref", func(m *preset.Marker) *uint8 { return &m.Ref }),
	scalar("trace", func(m *preset.Marker) *uint8 { return &m.Trace }),
	scalar("index", func(m *preset.Marker) *uint8 { return &m.Index }),
	scalar("frequency", func(m *preset.Marker) *uint64 { return &m.Frequency }),
}

// LimitSchema lists the document keys of a limit point
var LimitSchema = Schema[preset.Limit]{
	scalar("enabled", func(l *preset.Limit) *uint8 { return &l.Enabled }),
	scalar("level", func(l *preset.Limit) *float32 { return &l.Level }),
	scalar("frequency", func(l *preset.Limit) *uint64 { return &l.Frequency }),
	scalar("index", func(l *preset.Limit) *int16 { return &l.Index }),
}

type pre = preset.Preset

// PresetSchema lists the document keys of a preset in export order
var PresetSchema = Schema[pre]{
	scalar("auto_reflevel", func(p *pre) *bool { return &p.AutoRefLevel }),
	scalar("auto_attenuation", func(p *pre) *bool { return &p.AutoAttenuation }),
	scalar("mirror_masking", func(p *pre) *bool { return &p.MirrorMasking }),
	scalar("tracking_output", func(p *pre) *bool { return &p.TrackingOutput }),
	scalar("mute", func(p *pre) *bool { return &p.Mute }),
	scalar("auto_if", func(p *pre) *bool { return &p.AutoIF }),
	scalar("sweep", func(p *pre) *bool { return &p.Sweep }),
	scalar("pulse", func(p *pre) *bool { return &p.Pulse }),
	scalarArray("stored", func(p *pre) *[]bool { return &p.Stored }),
	scalarArray("normalized", func(p *pre) *[]bool { return &p.Normalized }),
	recordArray("bands", BandSchema, func(p *pre) *[]preset.Band { return &p.Bands }),

	scalar("mode", func(p *pre) *preset.Mode { return &p.Mode }),
	scalar("below_IF", func(p *pre) *preset.Switch { return &p.BelowIF }),
	scalar("unit", func(p *pre) *preset.Unit { return &p.Unit }),
	scalar("agc", func(p *pre) *preset.Switch { return &p.AGC }),
	scalar("lna", func(p *pre) *preset.Switch { return &p.LNA }),
	scalar("modulation", func(p *pre) *preset.Modulation { return &p.Modulation }),
	scalar("trigger", func(p *pre) *preset.Trigger { return &p.Trigger }),
	scalar("trigger_mode", func(p *pre) *preset.Trigger { return &p.TriggerMode }),
	scalar("trigger_direction", func(p *pre) *preset.Trigger { return &p.TriggerDirection }),
	scalar("trigger_beep", func(p *pre) *uint8 { return &p.TriggerBeep }),
	scalar("trigger_auto_save", func(p *pre) *uint8 { return &p.TriggerAutoSave }),
	scalar("step_delay_mode", func(p *pre) *preset.StepDelayMode { return &p.StepDelayMode }),
	scalar("waterfall", func(p *pre) *preset.Waterfall { return &p.Waterfall }),
	scalar("level_meter", func(p *pre) *uint8 { return &p.LevelMeter }),
	scalarArray("average", func(p *pre) *[]uint8 { return &p.Average }),
	scalarArray("subtract", func(p *pre) *[]uint8 { return &p.Subtract }),
	scalar("measurement", func(p *pre) *preset.Measurement { return &p.Measurement }),
	scalar("spur_removal", func(p *pre) *preset.Switch { return &p.SpurRemoval }),
	scalar("disable_correction", func(p *pre) *uint8 { return &p.DisableCorrection }),
	scalar("normalized_trace", func(p *pre) *int8 { return &p.NormalizedTrace }),
	scalar("listen", func(p *pre) *uint8 { return &p.Listen }),

	scalar("tracking", func(p *pre) *int8 { return &p.Tracking }),
	scalar("atten_step", func(p *pre) *uint8 { return &p.AttenStep }),
	scalar("_active_marker", func(p *pre) *int8 { return &p.ActiveMarker }),
	scalar("unit_scale_index", func(p *pre) *uint8 { return &p.UnitScaleIndex }),
	scalar("noise", func(p *pre) *uint8 { return &p.Noise }),
	scalar("lo_drive", func(p *pre) *uint8 { return &p.LODrive }),
	scalar("rx_drive", func(p *pre) *uint8 { return &p.RXDrive }),
	scalar("test", func(p *pre) *uint8 { return &p.Test }),
	scalar("harmonic", func(p *pre) *uint8 { return &p.Harmonic }),
	scalar("fast_speedup", func(p *pre) *uint8 { return &p.FastSpeedup }),
	scalar("faster_speedup", func(p *pre) *uint8 { return &p.FasterSpeedup }),
	scalar("_traces", func(p *pre) *uint8 { return &p.Traces }),
	scalar("draw_line", func(p *pre) *uint8 { return &p.DrawLine }),
	scalar("lock_display", func(p *pre) *uint8 { return &p.LockDisplay }),
	scalar("jog_jump", func(p *pre) *uint8 { return &p.JogJump }),
	scalar("multi_band", func(p *pre) *uint8 { return &p.MultiBand }),
	scalar("multi_trace", func(p *pre) *uint8 { return &p.MultiTrace }),
	scalar("trigger_trace", func(p *pre) *uint8 { return &p.TriggerTrace }),
	scalar("repeat", func(p *pre) *uint16 { return &p.Repeat }),
	scalar("linearity_step", func(p *pre) *uint16 { return &p.LinearityStep }),
	scalar("_sweep_points", func(p *pre) *uint16 { return &p.SweepPoints }),
	scalar("attenuate_x2", func(p *pre) *int16 { return &p.AttenuateX2 }),

	scalar("step_delay", func(p *pre) *uint16 { return &p.StepDelay }),
	scalar("offset_delay", func(p *pre) *uint16 { return &p.OffsetDelay }),
	scalar("freq_mode", func(p *pre) *uint16 { return &p.FreqMode }),
	scalar("refer", func(p *pre) *int16 { return &p.Refer }),
	scalar("modulation_depth_x100", func(p *pre) *uint16 { return &p.ModulationDepthX100 }),
	scalar("modulation_deviation_div100", func(p *pre) *uint16 { return &p.ModulationDeviationDiv100 }),
	scalar("decay", func(p *pre) *int32 { return &p.Decay }),
	scalar("attack", func(p *pre) *int32 { return &p.Attack }),
	scalar("slider_position", func(p *pre) *int32 { return &p.SliderPosition }),
	scalar("slider_span", func(p *pre) *uint64 { return &p.SliderSpan }),
	scalar("rbw_x10", func(p *pre) *uint32 { return &p.RBWx10 }),
	scalar("vbw_x100", func(p *pre) *uint32 { return &p.VBWx100 }),
	scalarArray("scan_after_dirty", func(p *pre) *[]uint32 { return &p.ScanAfterDirty }),
	scalar("modulation_frequency", func(p *pre) *float32 { return &p.ModulationFrequency }),
	scalar("reflevel", func(p *pre) *float32 { return &p.RefLevel }),
	scalar("scale", func(p *pre) *float32 { return &p.Scale }),
	scalar("external_gain", func(p *pre) *float32 { return &p.ExternalGain }),
	scalar("trigger_level", func(p *pre) *float32 { return &p.TriggerLevel }),
	scalar("level", func(p *pre) *float32 { return &p.Level }),
	scalar("level_sweep", func(p *pre) *float32 { return &p.LevelSweep }),

	scalar("unit_scale", func(p *pre) *float32 { return &p.UnitScale }),
	scalar("normalize_level", func(p *pre) *float32 { return &p.NormalizeLevel }),
	scalar("frequency_step", func(p *pre) *uint64 { return &p.FrequencyStep }),
	scalar("frequency0", func(p *pre) *uint64 { return &p.Frequency0 }),
	scalar("frequency1", func(p *pre) *uint64 { return &p.Frequency1 }),
	scalar("frequency_var", func(p *pre) *uint64 { return &p.FrequencyVar }),
	scalar("frequency_IF", func(p *pre) *uint64 { return &p.FrequencyIF }),
	scalar("frequency_offset", func(p *pre) *uint64 { return &p.FrequencyOffset }),
	scalar("trace_scale", func(p *pre) *float32 { return &p.TraceScale }),
	scalar("trace_refpos", func(p *pre) *float32 { return &p.TraceRefPos }),
	recordArray("_markers", MarkerSchema, func(p *pre) *[]preset.Marker { return &p.Markers }),
	recordGrid("limits", LimitSchema, func(p *pre) *[][]preset.Limit { return &p.Limits }),
	scalar("sweep_time_us", func(p *pre) *uint32 { return &p.SweepTimeUs }),
	scalar("measure_sweep_time_us", func(p *pre) *uint32 { return &p.MeasureSweepTimeUs }),
	scalar("actual_sweep_time_us", func(p *pre) *uint32 { return &p.ActualSweepTimeUs }),
	scalar("additional_step_delay_us", func(p *pre) *uint32 { return &p.AdditionalStepDelayUs }),
	scalar("trigger_grid", func(p *pre) *uint32 { return &p.TriggerGrid }),

	scalar("ultra", func(p *pre) *uint8 { return &p.Ultra }),
	scalar("extra_lna", func(p *pre) *bool { return &p.ExtraLNA }),
	scalar("R", func(p *pre) *int32 { return &p.R }),
	scalar("exp_aver", func(p *pre) *int32 { return &p.ExpAver }),
	scalar("increased_R", func(p *pre) *bool { return &p.IncreasedR }),
	scalar("mixer_output", func(p *pre) *bool { return &p.MixerOutput }),
	scalar("interval", func(p *pre) *uint32 { return &p.Interval }),
	scalar("preset_name", func(p *pre) *string { return &p.Name }),
	scalar("dBuV", func(p *pre) *bool { return &p.DBuV }),
	scalar("test_argument", func(p *pre) *int64 { return &p.TestArgument }),
}
