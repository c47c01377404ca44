package dtype

import "strings"

// ToInt returns the plain integer encoding of t, its ordinal.
func ToInt(t DataType) int {
	return int(t)
}

// FromInt maps a plain integer encoding back to its tag.
// Integers outside the declared range fail with ErrInvalidDataType.
func FromInt(i int) (DataType, error) {
	if i < 0 || i >= numDataTypes {
		return Unknown, &CodecError{Encoding: EncodingPlain, Code: i}
	}
	return DataType(i), nil
}

// FromWire maps a serialization-schema type code to its tag.
// Codes the schema does not define fail with ErrInvalidDataType.
func FromWire(code int) (DataType, error) {
	t, ok := wireToDataType[code]
	if !ok {
		return Unknown, &CodecError{Encoding: EncodingWire, Code: code}
	}
	return t, nil
}

// ParseDataType returns the tag whose String form equals name, ignoring case.
func ParseDataType(name string) (DataType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range dataTypes {
		if dataTypes[i].name == key {
			return DataType(i), nil
		}
	}
	return Unknown, &CodecError{Encoding: EncodingName, Name: name}
}
