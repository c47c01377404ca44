package dtype

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt_RoundTrip(t *testing.T) {
	for _, dt := range DataTypes() {
		t.Run(dt.String(), func(t *testing.T) {
			got, err := FromInt(ToInt(dt))
			require.NoError(t, err)
			require.Equal(t, dt, got)
		})
	}
}

func TestFromInt_Invalid(t *testing.T) {
	codes := []int{-1, numDataTypes, numDataTypes + 1, 255, 256, math.MaxInt, math.MinInt}

	for _, code := range codes {
		dt, err := FromInt(code)
		require.Error(t, err, "code %d", code)
		require.True(t, errors.Is(err, ErrInvalidDataType), "code %d", code)
		require.Equal(t, Unknown, dt)
	}
}

func TestCodecError_Fields(t *testing.T) {
	tests := []struct {
		name     string
		decode   func() (DataType, error)
		encoding Encoding
		code     int
		rejected string
		message  string
	}{
		{
			name:     "plain",
			decode:   func() (DataType, error) { return FromInt(99) },
			encoding: EncodingPlain,
			code:     99,
			message:  "plain code 99: invalid data type",
		},
		{
			name:     "negative plain",
			decode:   func() (DataType, error) { return FromInt(-3) },
			encoding: EncodingPlain,
			code:     -3,
			message:  "plain code -3: invalid data type",
		},
		{
			name:     "wire",
			decode:   func() (DataType, error) { return FromWire(42) },
			encoding: EncodingWire,
			code:     42,
			message:  "wire code 42: invalid data type",
		},
		{
			name:     "name",
			decode:   func() (DataType, error) { return ParseDataType("Complex64") },
			encoding: EncodingName,
			rejected: "Complex64",
			message:  `name "Complex64": invalid data type`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := tt.decode()
			require.Error(t, err)
			require.Equal(t, Unknown, dt)

			var codecErr *CodecError
			require.True(t, errors.As(err, &codecErr))
			assert.Equal(t, tt.encoding, codecErr.Encoding)
			assert.Equal(t, tt.code, codecErr.Code)
			assert.Equal(t, tt.rejected, codecErr.Name)
			assert.Equal(t, tt.message, err.Error())
			assert.ErrorIs(t, err, ErrInvalidDataType)
		})
	}
}

func TestCodecError_WrappedByCaller(t *testing.T) {
	_, err := FromWire(300)
	require.Error(t, err)

	wrapped := fmt.Errorf("decoding tensor header: %w", err)
	require.True(t, errors.Is(wrapped, ErrInvalidDataType))

	var codecErr *CodecError
	require.True(t, errors.As(wrapped, &codecErr))
	require.Equal(t, EncodingWire, codecErr.Encoding)
	require.Equal(t, 300, codecErr.Code)
	require.Equal(t, "decoding tensor header: wire code 300: invalid data type", wrapped.Error())
}

func TestEncoding_String(t *testing.T) {
	assert.Equal(t, "plain code", EncodingPlain.String())
	assert.Equal(t, "wire code", EncodingWire.String())
	assert.Equal(t, "name", EncodingName.String())
	assert.Equal(t, "Encoding(9)", Encoding(9).String())
}

func TestFromWire(t *testing.T) {
	tests := []struct {
		code int
		want DataType
	}{
		{0, Inherit},
		{1, Bool},
		{2, Float8},
		{3, Half},
		{4, Half2},
		{5, Float32},
		{6, Double},
		{7, Int8},
		{8, Int16},
		{9, Int32},
		{10, Int64},
		{11, Uint8},
		{12, Uint16},
		{13, Uint32},
		{14, Uint64},
		{15, QInt8},
		{16, QInt16},
		{17, BFloat16},
		{50, UTF8},
		{100, Any},
		{200, Auto},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := FromWire(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromWire_Invalid(t *testing.T) {
	for _, code := range []int{-1, 18, 49, 51, 99, 101, 199, 201, 255, 1 << 20} {
		dt, err := FromWire(code)
		require.Error(t, err, "code %d", code)
		require.True(t, errors.Is(err, ErrInvalidDataType), "code %d", code)
		require.Contains(t, err.Error(), "wire code")
		require.Equal(t, Unknown, dt)
	}
}

// TestFromWire_Injective checks that no two wire codes share a tag and that the
// codes without a wire form stay unreachable.
func TestFromWire_Injective(t *testing.T) {
	seen := make(map[DataType]int)
	for code := -1; code <= 256; code++ {
		dt, err := FromWire(code)
		if err != nil {
			continue
		}
		prev, dup := seen[dt]
		require.False(t, dup, "%s decoded from %d and %d", dt, prev, code)
		seen[dt] = code
	}

	require.Len(t, seen, len(wireToDataType))
	assert.NotContains(t, seen, Unknown)
	assert.NotContains(t, seen, Compressed)
}

// TestFromWire_CodesFitSchemaByte keeps the wire table inside the range the
// schema's ubyte can encode.
func TestFromWire_CodesFitSchemaByte(t *testing.T) {
	for code, dt := range wireToDataType {
		require.GreaterOrEqual(t, code, 0, "%s", dt)
		require.LessOrEqual(t, code, MaxWireCode, "%s", dt)
	}

	_, err := FromWire(MaxWireCode + 1)
	require.ErrorIs(t, err, ErrInvalidDataType)
}

// TestFromWire_IndependentOfOrdinals documents that the wire encoding is not
// the plain encoding.
func TestFromWire_IndependentOfOrdinals(t *testing.T) {
	fromWire, err := FromWire(5)
	require.NoError(t, err)
	fromPlain, err := FromInt(5)
	require.NoError(t, err)
	assert.NotEqual(t, fromWire, fromPlain)
}

func TestParseDataType(t *testing.T) {
	for _, dt := range DataTypes() {
		got, err := ParseDataType(dt.String())
		require.NoError(t, err)
		require.Equal(t, dt, got)
	}

	got, err := ParseDataType("  Float32 ")
	require.NoError(t, err)
	require.Equal(t, Float32, got)

	_, err = ParseDataType("complex64")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidDataType))
	require.Contains(t, err.Error(), `"complex64"`)
}

func BenchmarkFromWire(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = FromWire(i % 18)
	}
}
