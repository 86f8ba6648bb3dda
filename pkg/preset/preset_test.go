package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Collections(t *testing.T) {
	p := Default()

	assert.Len(t, p.Stored, TracesMax)
	assert.Len(t, p.Normalized, TracesMax)
	assert.Len(t, p.Average, TracesMax)
	assert.Len(t, p.Subtract, TracesMax)
	assert.Len(t, p.ScanAfterDirty, TracesMax)
	assert.Len(t, p.Bands, BandsMax)
	assert.Len(t, p.Markers, MarkersMax)
	require.Len(t, p.Limits, LimitsMax)
	for _, row := range p.Limits {
		assert.Len(t, row, ReferenceMax)
	}
}

func TestDefault_Values(t *testing.T) {
	p := Default()

	assert.True(t, p.AutoRefLevel)
	assert.True(t, p.AutoAttenuation)
	assert.True(t, p.Mute)
	assert.True(t, p.AutoIF)
	assert.False(t, p.Sweep)
	assert.Equal(t, SwitchAutoOff, p.BelowIF)
	assert.Equal(t, SwitchAutoOn, p.AGC)
	assert.Equal(t, TriggerMid, p.TriggerMode)
	assert.Equal(t, TriggerUp, p.TriggerDirection)
	assert.Equal(t, int8(-1), p.NormalizedTrace)
	assert.Equal(t, uint8(12), p.RXDrive)
	assert.Equal(t, uint8(255), p.TriggerTrace)
	assert.Equal(t, uint16(450), p.SweepPoints)
	assert.Equal(t, int16(-1), p.Refer)
	assert.Equal(t, float32(-10), p.RefLevel)
	assert.Equal(t, float32(-150), p.TriggerLevel)
	assert.Equal(t, uint64(800000000), p.Frequency1)
	assert.Equal(t, uint64(977400000), p.FrequencyIF)
	assert.True(t, p.MixerOutput)
	assert.Empty(t, p.Name)
}

func TestDefault_Independent(t *testing.T) {
	a, b := Default(), Default()
	a.Limits[0][0].Level = 5
	a.Bands[1].Name = "x"
	assert.Zero(t, b.Limits[0][0].Level)
	assert.Empty(t, b.Bands[1].Name)
}

func TestPreset_Clone(t *testing.T) {
	p := Default()
	p.Name = "orig"
	p.Markers[2].Frequency = 100

	c := p.Clone()
	require.Equal(t, p, c)

	c.Name = "copy"
	c.Stored[0] = true
	c.Average[1] = 9
	c.Markers[2].Frequency = 200
	c.Limits[3][1].Enabled = 1
	c.Bands[0].Enabled = true
	c.ScanAfterDirty[2] = 7

	assert.Equal(t, "orig", p.Name)
	assert.False(t, p.Stored[0])
	assert.Zero(t, p.Average[1])
	assert.Equal(t, uint64(100), p.Markers[2].Frequency)
	assert.Zero(t, p.Limits[3][1].Enabled)
	assert.False(t, p.Bands[0].Enabled)
	assert.Zero(t, p.ScanAfterDirty[2])
}

func TestPreset_CloneKeepsNil(t *testing.T) {
	p := &Preset{}
	c := p.Clone()
	assert.Nil(t, c.Limits)
	assert.Empty(t, c.Markers)
}

func TestEnums_Valid(t *testing.T) {
	testCases := []struct {
		name  string
		valid bool
	}{
		{"mode ultra", ModeUltra.Valid()},
		{"switch auto on", SwitchAutoOn.Valid()},
		{"unit dBc", UnitDBc.Valid()},
		{"modulation external", ModulationExternal.Valid()},
		{"trigger auto save", TriggerAutoSave.Valid()},
		{"step delay manual", StepDelayManual.Valid()},
		{"waterfall super", WaterfallSuper.Valid()},
		{"measurement deconv", MeasurementDeconv.Valid()},
		{"marker flags", (MarkerReference | MarkerTracking | MarkerDelete).Valid()},
		{"marker enabled", MarkerEnabled.Valid()},
	}
	for _, tc := range testCases {
		assert.True(t, tc.valid, tc.name)
	}

	assert.False(t, Mode(5).Valid())
	assert.False(t, Switch(4).Valid())
	assert.False(t, Unit(8).Valid())
	assert.False(t, Modulation(7).Valid())
	assert.False(t, Trigger(12).Valid())
	assert.False(t, StepDelayMode(5).Valid())
	assert.False(t, Waterfall(4).Valid())
	assert.False(t, Measurement(16).Valid())
	assert.False(t, MarkerType(0x80).Valid())
	assert.False(t, MarkerState(2).Valid())
}

func TestMarkerType_Bits(t *testing.T) {
	assert.Equal(t, MarkerType(0x01), MarkerReference)
	assert.Equal(t, MarkerType(0x02), MarkerDelta)
	assert.Equal(t, MarkerType(0x40), MarkerDelete)
}
