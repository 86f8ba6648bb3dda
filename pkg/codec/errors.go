package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMagicMismatch is returned when the first word is not the preset magic
	ErrMagicMismatch = errors.New("codec: magic mismatch")
	// ErrChecksumMismatch is returned when the stored checksum does not match the record contents
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")
	// ErrTruncatedStream is returned when the input ends before the record does
	ErrTruncatedStream = errors.New("codec: truncated stream")
	// ErrCountMismatch is returned when a fixed-size collection has the wrong length
	ErrCountMismatch = errors.New("codec: count mismatch")
	// ErrTextEncoding is returned when a name cannot be stored in its fixed buffer
	ErrTextEncoding = errors.New("codec: text encoding")
	// ErrInvalidEnum is returned in strict mode for out-of-range enumeration bytes
	ErrInvalidEnum = errors.New("codec: invalid enumeration value")
)

// MagicError carries the magic word that was found
type MagicError struct {
	Got uint32
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("codec: magic mismatch: got 0x%08X, want 0x%08X", e.Got, magic)
}

func (e *MagicError) Unwrap() error { return ErrMagicMismatch }

// ChecksumError carries both checksum values
type ChecksumError struct {
	Stored   uint32
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("codec: checksum mismatch: stored 0x%08X, computed 0x%08X", e.Stored, e.Computed)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// TruncatedError describes where the input ran out
type TruncatedError struct {
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("codec: truncated stream at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncatedStream }

type CountError struct {
	Field string
	Want  int
	Got   int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("codec: %s has %d elements, want %d", e.Field, e.Got, e.Want)
}

func (e *CountError) Unwrap() error { return ErrCountMismatch }

type TextEncodingError struct {
	Field  string
	Value  string
	Reason string
}

func (e *TextEncodingError) Error() string {
	return fmt.Sprintf("codec: %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *TextEncodingError) Unwrap() error { return ErrTextEncoding }

type EnumError struct {
	Field string
	Value uint8
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("codec: %s has invalid value %d", e.Field, e.Value)
}

func (e *EnumError) Unwrap() error { return ErrInvalidEnum }
