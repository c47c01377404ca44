package dtype

import "math"

// MaxWireCode is the largest code the serialization schema can carry: its
// DType enumeration is a ubyte.
const MaxWireCode = math.MaxUint8

// wireToDataType translates the serialization schema's DType enumeration.
// It must track the schema definition, not the DataType ordinals: the two
// encodings are independent. Unknown and Compressed have no wire code.
var wireToDataType = map[int]DataType{
	0:   Inherit,
	1:   Bool,
	2:   Float8,
	3:   Half,
	4:   Half2,
	5:   Float32,
	6:   Double,
	7:   Int8,
	8:   Int16,
	9:   Int32,
	10:  Int64,
	11:  Uint8,
	12:  Uint16,
	13:  Uint32,
	14:  Uint64,
	15:  QInt8,
	16:  QInt16,
	17:  BFloat16,
	50:  UTF8,
	100: Any,
	200: Auto,
}
