package dtype

import (
	"math"

	"github.com/x448/float16"
)

// Float16 is an IEEE 754 half precision value stored as its raw bits.
//
// Format (16 bits total):
//   - Bit 15:     Sign (1 bit)
//   - Bits 14-10: Exponent (5 bits, bias=15)
//   - Bits 9-0:   Mantissa (10 bits)
//
// Range: ±65504. Smallest normal: 2^-14. Float32 widens exactly.
type Float16 = float16.Float16

// BFloat16Value is a 16-bit brain floating point value stored as its raw bits.
//
// Format (16 bits total):
//   - Bit 15:     Sign (1 bit)
//   - Bits 14-7:  Exponent (8 bits, bias=127) - SAME as float32
//   - Bits 6-0:   Mantissa (7 bits) - truncated from float32's 23 bits
//
// bfloat16 is the upper half of a float32, so it keeps float32's range
// (±3.39e38) with about 2 decimal digits of precision.
type BFloat16Value uint16

// Float32 widens the bfloat16 value to float32. The conversion is exact.
func (b BFloat16Value) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}
