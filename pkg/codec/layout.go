package codec

import "github.com/ssargent/tinyprs/pkg/preset"

const magic = preset.Magic

// Record geometry. Offsets are relative to the start of the record.
const (
	RecordSize    = 1584
	ChecksumRange = 1576

	BandSize   = 48
	MarkerSize = 16
	LimitSize  = 24

	OffsetMagic          = 0
	OffsetFlags          = 4
	OffsetStored         = 12
	OffsetNormalized     = 16
	OffsetBands          = 24
	OffsetModeBlock      = OffsetBands + preset.BandsMax*BandSize // 408
	OffsetAverage        = OffsetModeBlock + 14
	OffsetSubtract       = OffsetAverage + preset.TracesMax
	OffsetScalarBlock    = OffsetSubtract + preset.TracesMax // 430
	OffsetScanAfterDirty = OffsetScalarBlock + 74             // 504
	OffsetFloatBlock     = OffsetScanAfterDirty + 4*preset.TracesMax
	OffsetMarkers        = OffsetFloatBlock + 96 // 616
	OffsetLimits         = OffsetMarkers + preset.MarkersMax*MarkerSize
	OffsetTail           = OffsetLimits + preset.LimitsMax*preset.ReferenceMax*LimitSize // 1512
	OffsetChecksum       = OffsetTail + 64
)

// compile-time layout checks
var (
	_ [OffsetChecksum - ChecksumRange]struct{}
	_ [ChecksumRange - OffsetChecksum]struct{}
	_ [RecordSize - ChecksumRange - 8]struct{}
	_ [ChecksumRange + 8 - RecordSize]struct{}
)
