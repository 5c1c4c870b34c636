package common

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	decimal2 "github.com/govalues/decimal"
)

type Decimal struct {
	decimal2.Decimal
}

func (dec Decimal) String() string {
	return dec.Decimal.String()
}

// Compare returns -1, 0 or 1.
func (dec Decimal) Compare(o Decimal) int {
	return dec.Decimal.Cmp(o.Decimal)
}

// Number is a numeric cell. It holds an exact Decimal when the value fits the
// decimal's 19 digits and a float64 otherwise.
type Number struct {
	Dec   Decimal
	Float float64
	Exact bool
}

func (n Number) Float64() float64 {
	if !n.Exact {
		return n.Float
	}
	f, _ := strconv.ParseFloat(n.Dec.String(), 64)
	return f
}

// Compare returns -1, 0 or 1. Two exact numbers compare as decimals,
// anything else as float64.
func (n Number) Compare(o Number) int {
	if n.Exact && o.Exact {
		return n.Dec.Compare(o.Dec)
	}
	return cmp.Compare(n.Float64(), o.Float64())
}

func (n Number) String() string {
	if n.Exact {
		return n.Dec.String()
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}

func exact(d decimal2.Decimal) Number {
	return Number{Dec: Decimal{Decimal: d}, Exact: true}
}

// ParseNumber converts a numeric cell into a Number. For strings the whole
// string must be a number: "12px" is not numeric. The second result is false
// for anything that is not a finite number.
func ParseNumber(value any) (Number, bool) {
	switch v := value.(type) {
	case Number:
		return v, true
	case Decimal:
		return Number{Dec: v, Exact: true}, true
	case *Decimal:
		if v == nil {
			return Number{}, false
		}
		return Number{Dec: *v, Exact: true}, true
	case decimal2.Decimal:
		return exact(v), true
	case int:
		return parseInt(int64(v))
	case int8:
		return parseInt(int64(v))
	case int16:
		return parseInt(int64(v))
	case int32:
		return parseInt(int64(v))
	case int64:
		return parseInt(v)
	case uint:
		return parseNumberString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return parseInt(int64(v))
	case uint16:
		return parseInt(int64(v))
	case uint32:
		return parseInt(int64(v))
	case uint64:
		return parseNumberString(strconv.FormatUint(v, 10))
	case float32:
		return parseNumberFloat(float64(v))
	case float64:
		return parseNumberFloat(v)
	case string:
		return parseNumberString(v)
	default:
		return Number{}, false
	}
}

func parseInt(i int64) (Number, bool) {
	d, err := decimal2.New(i, 0)
	if err != nil {
		return parseNumberFloat(float64(i))
	}
	return exact(d), true
}

func parseNumberFloat(f float64) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, false
	}
	d, err := decimal2.NewFromFloat64(f)
	if err != nil {
		return Number{Float: f}, true
	}
	return exact(d), true
}

func parseNumberString(s string) (Number, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, false
	}
	d, err := decimal2.Parse(s)
	if err == nil {
		return exact(d), true
	}
	//exponent forms like 1e3, or more digits than a decimal holds
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, false
	}
	return parseNumberFloat(f)
}
