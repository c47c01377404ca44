package dtype

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataType is returned when an integer or name does not map to a
	// declared data type.
	ErrInvalidDataType = errors.New("invalid data type")

	// ErrUnsized is returned when a placeholder data type is used for sizing.
	ErrUnsized = errors.New("data type has no storage size")
)

// Encoding names the external form a codec lookup started from.
type Encoding uint8

// Encodings accepted by the codec.
const (
	EncodingPlain Encoding = iota // ordinal, see FromInt
	EncodingWire                  // serialization schema code, see FromWire
	EncodingName                  // String form, see ParseDataType
)

// String returns the label used in error messages.
func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "plain code"
	case EncodingWire:
		return "wire code"
	case EncodingName:
		return "name"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// CodecError reports a value that does not map to any data type.
// It unwraps to ErrInvalidDataType.
type CodecError struct {
	Encoding Encoding
	Code     int    // rejected integer, for EncodingPlain and EncodingWire
	Name     string // rejected name, for EncodingName
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Encoding == EncodingName {
		return fmt.Sprintf("%s %q: %v", e.Encoding, e.Name, ErrInvalidDataType)
	}
	return fmt.Sprintf("%s %d: %v", e.Encoding, e.Code, ErrInvalidDataType)
}

// Unwrap returns ErrInvalidDataType so callers can test with errors.Is.
func (e *CodecError) Unwrap() error {
	return ErrInvalidDataType
}
