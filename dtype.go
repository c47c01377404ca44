// Package dtype provides the data-type metadata of a multi-backend tensor engine.
// It maps a closed set of numeric representation tags to their storage size,
// their smallest and largest usable values and their machine epsilon, and
// translates tags to and from external integer encodings.
//
// Every table in this package is fixed at build time and never written
// afterwards, so all functions are safe for concurrent use.
package dtype

import "fmt"

// DataType identifies one numeric representation supported by the engine.
type DataType uint8

// Data type tags. The ordinal of each tag is its plain integer encoding,
// so new tags are only ever appended.
const (
	// Unknown is the zero value and has no representation.
	Unknown DataType = iota
	// Bool is a one-byte boolean.
	Bool
	// Int8 is an 8-bit signed integer.
	Int8
	// Int16 is a 16-bit signed integer.
	Int16
	// Int32 is a 32-bit signed integer.
	Int32
	// Int64 is a 64-bit signed integer.
	Int64
	// Uint8 is an 8-bit unsigned integer.
	Uint8
	// Uint16 is a 16-bit unsigned integer.
	Uint16
	// Uint32 is a 32-bit unsigned integer.
	Uint32
	// Uint64 is a 64-bit unsigned integer.
	Uint64
	// QInt8 is an 8-bit quantized integer. Wire-only, no limits.
	QInt8
	// QInt16 is a 16-bit quantized integer. Wire-only, no limits.
	QInt16
	// Float8 is an 8-bit float. Wire-only, no limits.
	Float8
	// Half is IEEE 754 half precision, represented by Float16.
	Half
	// Half2 is a packed pair of half precision values. Wire-only, no limits.
	Half2
	// BFloat16 is the brain floating point format, represented by BFloat16Value.
	BFloat16
	// Float32 is IEEE 754 single precision.
	Float32
	// Double is IEEE 754 double precision.
	Double
	// UTF8 marks string data. Wire-only and unsized.
	UTF8
	// Compressed marks a compressed buffer whose element type is not known yet.
	Compressed
	// Any accepts every data type.
	Any
	// Auto asks the consumer to pick a data type.
	Auto
	// Inherit takes the data type of an input.
	Inherit

	numDataTypes = iota
)

// Class is the broad numeric category of a data type.
type Class uint8

// Class constants. Placeholder tags belong to ClassNone.
const (
	ClassNone Class = iota
	ClassBool
	ClassSigned
	ClassUnsigned
	ClassFloat
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassBool:
		return "bool"
	case ClassSigned:
		return "signed"
	case ClassUnsigned:
		return "unsigned"
	case ClassFloat:
		return "float"
	default:
		return "none"
	}
}

// dataTypeInfo is one row of the data type table.
type dataTypeInfo struct {
	name  string
	class Class
	size  int // bytes, Unsized for placeholders
	bits  int // value bits
	typed bool
}

// dataTypes is indexed by DataType ordinal.
var dataTypes = [numDataTypes]dataTypeInfo{
	Unknown:    {"unknown", ClassNone, Unsized, 0, false},
	Bool:       {"bool", ClassBool, 1, 1, true},
	Int8:       {"int8", ClassSigned, 1, 8, true},
	Int16:      {"int16", ClassSigned, 2, 16, true},
	Int32:      {"int32", ClassSigned, 4, 32, true},
	Int64:      {"int64", ClassSigned, 8, 64, true},
	Uint8:      {"uint8", ClassUnsigned, 1, 8, true},
	Uint16:     {"uint16", ClassUnsigned, 2, 16, true},
	Uint32:     {"uint32", ClassUnsigned, 4, 32, true},
	Uint64:     {"uint64", ClassUnsigned, 8, 64, true},
	QInt8:      {"qint8", ClassSigned, 1, 8, false},
	QInt16:     {"qint16", ClassSigned, 2, 16, false},
	Float8:     {"float8", ClassFloat, 1, 8, false},
	Half:       {"half", ClassFloat, 2, 16, true},
	Half2:      {"half2", ClassFloat, 4, 32, false},
	BFloat16:   {"bfloat16", ClassFloat, 2, 16, true},
	Float32:    {"float32", ClassFloat, 4, 32, true},
	Double:     {"double", ClassFloat, 8, 64, true},
	UTF8:       {"utf8", ClassNone, Unsized, 0, false},
	Compressed: {"compressed", ClassNone, Unsized, 0, false},
	Any:        {"any", ClassNone, Unsized, 0, false},
	Auto:       {"auto", ClassNone, Unsized, 0, false},
	Inherit:    {"inherit", ClassNone, Unsized, 0, false},
}

// IsValid reports whether t is a declared tag.
func (t DataType) IsValid() bool {
	return int(t) < numDataTypes
}

// String returns the lower-case name of the data type.
func (t DataType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
	return dataTypes[t].name
}

// Class returns the numeric class of t.
func (t DataType) Class() Class {
	if !t.IsValid() {
		return ClassNone
	}
	return dataTypes[t].class
}

// IsFloat reports whether t is a floating-point type.
func (t DataType) IsFloat() bool {
	return t.Class() == ClassFloat
}

// IsInteger reports whether t is a signed or unsigned integer type.
func (t DataType) IsInteger() bool {
	c := t.Class()
	return c == ClassSigned || c == ClassUnsigned
}

// IsSigned reports whether t can hold negative values.
func (t DataType) IsSigned() bool {
	c := t.Class()
	return c == ClassSigned || c == ClassFloat
}

// IsPlaceholder reports whether t is a declared marker with no storage width.
// Undeclared values are not placeholders.
func (t DataType) IsPlaceholder() bool {
	return t.IsValid() && t.ByteSize() == Unsized
}

// HasRepresentation reports whether t has a Go type usable with the limit
// accessors (see Numeric).
func (t DataType) HasRepresentation() bool {
	return t.IsValid() && dataTypes[t].typed
}

// DataTypes returns every declared tag in ordinal order.
func DataTypes() []DataType {
	out := make([]DataType, numDataTypes)
	for i := range out {
		out[i] = DataType(i)
	}
	return out
}
