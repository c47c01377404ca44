package cli

import (
	"strconv"

	"github.com/scigolib/dtype"
)

// Row describes one data type as printed by the CLI.
type Row struct {
	Name   string        `yaml:"name"`
	Plain  int           `yaml:"plain"`
	Wire   *int          `yaml:"wire,omitempty"`
	Bytes  *int          `yaml:"bytes,omitempty"`
	Class  string        `yaml:"class"`
	Limits *LimitColumns `yaml:"limits,omitempty"`
}

// LimitColumns holds the formatted limits of a represented data type.
type LimitColumns struct {
	Min     string `yaml:"min"`
	Max     string `yaml:"max"`
	Epsilon string `yaml:"epsilon"`
}

// wireCodes inverts the wire table by trying every code the schema's ubyte
// DType can hold.
func wireCodes() map[dtype.DataType]int {
	codes := make(map[dtype.DataType]int)
	for code := 0; code <= dtype.MaxWireCode; code++ {
		if dt, err := dtype.FromWire(code); err == nil {
			codes[dt] = code
		}
	}
	return codes
}

// BuildRows returns one row per declared data type, in ordinal order.
func BuildRows() []Row {
	wire := wireCodes()
	all := dtype.DataTypes()
	rows := make([]Row, 0, len(all))
	for _, dt := range all {
		rows = append(rows, buildRow(dt, wire))
	}
	return rows
}

func buildRow(dt dtype.DataType, wire map[dtype.DataType]int) Row {
	row := Row{
		Name:  dt.String(),
		Plain: dtype.ToInt(dt),
		Class: dt.Class().String(),
	}
	if code, ok := wire[dt]; ok {
		row.Wire = &code
	}
	if size := dtype.ByteSize(dt); size != dtype.Unsized {
		row.Bytes = &size
	}
	if lim, ok := limitsFor(dt); ok {
		row.Limits = &lim
	}
	return row
}

func describeLimits[T dtype.Numeric](format func(T) string) LimitColumns {
	lim := dtype.LimitsOf[T]()
	return LimitColumns{
		Min:     format(lim.Min),
		Max:     format(lim.Max),
		Epsilon: format(lim.Epsilon),
	}
}

// limitsFor formats the limits of dt's representation. Tags without a Go
// representation report false.
func limitsFor(dt dtype.DataType) (LimitColumns, bool) {
	switch dt {
	case dtype.Bool:
		return describeLimits(strconv.FormatBool), true
	case dtype.Int8:
		return describeLimits(formatInt[int8]), true
	case dtype.Int16:
		return describeLimits(formatInt[int16]), true
	case dtype.Int32:
		return describeLimits(formatInt[int32]), true
	case dtype.Int64:
		return describeLimits(formatInt[int64]), true
	case dtype.Uint8:
		return describeLimits(formatUint[uint8]), true
	case dtype.Uint16:
		return describeLimits(formatUint[uint16]), true
	case dtype.Uint32:
		return describeLimits(formatUint[uint32]), true
	case dtype.Uint64:
		return describeLimits(formatUint[uint64]), true
	case dtype.Half:
		return describeLimits(func(v dtype.Float16) string { return formatFloat32(v.Float32()) }), true
	case dtype.BFloat16:
		return describeLimits(func(v dtype.BFloat16Value) string { return formatFloat32(v.Float32()) }), true
	case dtype.Float32:
		return describeLimits(formatFloat32), true
	case dtype.Double:
		return describeLimits(formatFloat64), true
	default:
		return LimitColumns{}, false
	}
}

func formatInt[T int8 | int16 | int32 | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUint[T uint8 | uint16 | uint32 | uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
