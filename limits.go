package dtype

import (
	"math"

	"github.com/x448/float16"
)

// Numeric lists the Go types that represent a data type. Limits can only be
// requested for these types; any other type is rejected by the compiler.
type Numeric interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		Float16 | BFloat16Value | float32 | float64
}

// Limits holds the three limit constants of a representation.
//
// Min is the smallest strictly positive usable magnitude, not the most
// negative value: 1 for integers, the smallest normal value for floats and
// false for bool. Reductions and normalizations rely on it being non-zero.
type Limits[T Numeric] struct {
	Min     T
	Max     T
	Epsilon T
}

// Half precision bit patterns.
const (
	float16MinBits = 0x0400 // 6.1035e-05
	float16MaxBits = 0x7BFF // 65504
	float16EpsBits = 0x1400 // 0.00097656
)

// bfloat16 bit patterns.
const (
	bfloat16MinBits = 0x0080 // 1.1755e-38
	bfloat16MaxBits = 0x7F7F // 3.3895e38
	bfloat16EpsBits = 0x3C00 // 2^-7
)

var (
	boolLimits   = Limits[bool]{Min: false, Max: true, Epsilon: false}
	int8Limits   = Limits[int8]{Min: 1, Max: math.MaxInt8}
	int16Limits  = Limits[int16]{Min: 1, Max: math.MaxInt16}
	int32Limits  = Limits[int32]{Min: 1, Max: math.MaxInt32}
	int64Limits  = Limits[int64]{Min: 1, Max: math.MaxInt64}
	uint8Limits  = Limits[uint8]{Min: 1, Max: math.MaxUint8}
	uint16Limits = Limits[uint16]{Min: 1, Max: math.MaxUint16}
	uint32Limits = Limits[uint32]{Min: 1, Max: math.MaxUint32}
	uint64Limits = Limits[uint64]{Min: 1, Max: math.MaxUint64}

	float16Limits = Limits[Float16]{
		Min:     float16.Frombits(float16MinBits),
		Max:     float16.Frombits(float16MaxBits),
		Epsilon: float16.Frombits(float16EpsBits),
	}
	bfloat16Limits = Limits[BFloat16Value]{Min: bfloat16MinBits, Max: bfloat16MaxBits, Epsilon: bfloat16EpsBits}

	float32Limits = Limits[float32]{Min: 1.175494e-38, Max: 3.402823e+38, Epsilon: 0x1p-23}
	float64Limits = Limits[float64]{
		Min:     2.2250738585072014e-308,
		Max:     math.MaxFloat64,
		Epsilon: 0x1p-52,
	}
)

// specialization pairs a representation with its tag and limits.
type specialization struct {
	tag    DataType
	limits any // *Limits[T]
}

// specializationOf resolves the table entry for T. The type switch works on a
// typed nil pointer, so it never allocates.
func specializationOf[T Numeric]() specialization {
	switch any((*T)(nil)).(type) {
	case *bool:
		return specialization{Bool, &boolLimits}
	case *int8:
		return specialization{Int8, &int8Limits}
	case *int16:
		return specialization{Int16, &int16Limits}
	case *int32:
		return specialization{Int32, &int32Limits}
	case *int64:
		return specialization{Int64, &int64Limits}
	case *uint8:
		return specialization{Uint8, &uint8Limits}
	case *uint16:
		return specialization{Uint16, &uint16Limits}
	case *uint32:
		return specialization{Uint32, &uint32Limits}
	case *uint64:
		return specialization{Uint64, &uint64Limits}
	case *Float16:
		return specialization{Half, &float16Limits}
	case *BFloat16Value:
		return specialization{BFloat16, &bfloat16Limits}
	case *float32:
		return specialization{Float32, &float32Limits}
	case *float64:
		return specialization{Double, &float64Limits}
	}
	// Unreachable: Numeric only admits the types above.
	return specialization{}
}

// LimitsOf returns the minimum, maximum and epsilon of T.
func LimitsOf[T Numeric]() Limits[T] {
	return *specializationOf[T]().limits.(*Limits[T])
}

// MinimumOf returns the smallest strictly positive usable value of T
// (false for bool). See Limits.
func MinimumOf[T Numeric]() T {
	return LimitsOf[T]().Min
}

// MaximumOf returns the largest finite value of T (true for bool).
func MaximumOf[T Numeric]() T {
	return LimitsOf[T]().Max
}

// EpsilonOf returns the gap between 1.0 and the next representable value of a
// floating-point T, and zero for integers and bool. The Float16 epsilon is
// the fixed literal 0.00097656 rather than a computed value.
func EpsilonOf[T Numeric]() T {
	return LimitsOf[T]().Epsilon
}

// TypeOf returns the data type tag represented by T.
func TypeOf[T Numeric]() DataType {
	return specializationOf[T]().tag
}
