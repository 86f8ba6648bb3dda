// Package codec provides serialization and deserialization of tinySA Ultra
// preset records (.prs files).
//
// A preset is a fixed-layout, little-endian image of the instrument's
// setting_t structure. Every record is exactly 1584 bytes; there is no
// version field and no variable-length data.
//
// # Record Format
//
//	[Magic(4)][Flags(8)][Stored(4)][Normalized(4)][Pad(4)]
//	[Band x 8 (48 each)]
//	[Mode block(14)][Average(4)][Subtract(4)]
//	[Scalar block(74)][ScanAfterDirty(16)][Float block(96)]
//	[Marker x 8 (16 each)][Limit x 8 x 4 (24 each)]
//	[Tail block(64)][Checksum(4)][Pad(4)]
//
// The layout constants in layout.go give the offset of each group. Padding
// bytes are skipped on read and written as zero.
//
// Names (band names and the preset name) are fixed-width ISO-8859-1 buffers
// terminated by the first NUL. A name that fills its buffer has no
// terminator.
//
// # Checksum Calculation
//
// The checksum covers the first 1576 bytes of the record, that is everything
// before the checksum field. Each little-endian 32-bit word n is folded into
// a 32-bit accumulator starting at zero:
//
//	acc = rotl(acc, 1) + n
//
// It detects accidental corruption only.
//
// # Usage
//
//	c := codec.NewPresetCodec()
//
//	p, err := c.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	p.RefLevel = -20
//	out, err := c.Encode(p)
//
// # Error Handling
//
// Every failure is terminal for the call and no partial record is returned.
// Errors wrap one of the package sentinels, so callers can test the kind with
// errors.Is and extract details with errors.As:
//   - ErrMagicMismatch (*MagicError): wrong leading constant, checked before anything else
//   - ErrTruncatedStream (*TruncatedError): input ends inside a field
//   - ErrChecksumMismatch (*ChecksumError): stored and computed checksum differ
//   - ErrCountMismatch (*CountError): a fixed-size collection has the wrong length
//   - ErrTextEncoding (*TextEncodingError): a name does not fit its buffer
//   - ErrInvalidEnum (*EnumError): out-of-range enumeration, strict mode only
//
// # Thread Safety
//
// PresetCodec instances are safe for concurrent use. Reader and Writer are
// not; each call creates its own.
package codec
