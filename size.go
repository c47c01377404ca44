package dtype

import (
	"fmt"

	"github.com/scigolib/dtype/internal/utils"
)

// Unsized is returned by ByteSize for tags that have no storage width.
// It must never take part in buffer arithmetic.
const Unsized = -1

// ByteSize returns the storage width of one element of t in bytes,
// or Unsized for placeholder and undeclared tags.
func ByteSize(t DataType) int {
	if !t.IsValid() {
		return Unsized
	}
	return dataTypes[t].size
}

// ByteSize returns the storage width of one element in bytes.
func (t DataType) ByteSize() int {
	return ByteSize(t)
}

// BitWidth returns the number of value bits of t's representation.
// Unsized tags report 0.
func BitWidth(t DataType) int {
	if !t.IsValid() {
		return 0
	}
	return dataTypes[t].bits
}

// BufferSize returns the number of bytes needed to store n elements of t.
func BufferSize(t DataType, n int) (int, error) {
	size := ByteSize(t)
	if size == Unsized {
		return 0, fmt.Errorf("%s: %w", t, ErrUnsized)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative element count %d", n)
	}
	total, err := utils.SafeMultiply(size, n)
	if err != nil {
		return 0, fmt.Errorf("buffer of %d %s elements: %w", n, t, err)
	}
	return total, nil
}
