package statement

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the three shapes a transaction cell value can take.
type ValueKind int

const (
	// KindInteger is a bare JSON integer literal.
	KindInteger ValueKind = iota
	// KindString is a quoted JSON string.
	KindString
	// KindDecimal is a JSON number with a fractional part or one that does
	// not fit an int64.
	KindDecimal
)

// Value is the untyped scalar carried by a transaction cell. The bank decides
// the shape per column, so the variant is picked from the JSON literal at
// decode time: integer first, then string, then exact decimal. A quoted "42"
// stays a string; an unquoted 123.45 becomes a decimal.
type Value struct {
	Kind    ValueKind
	Integer int64
	Str     string
	Decimal decimal.Decimal
}

// IntegerValue builds an integer-shaped Value.
func IntegerValue(i int64) Value {
	return Value{Kind: KindInteger, Integer: i}
}

// StringValue builds a string-shaped Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// DecimalValue builds a decimal-shaped Value.
func DecimalValue(d decimal.Decimal) Value {
	return Value{Kind: KindDecimal, Decimal: d}
}

// UnmarshalJSON implements the ordered three-way decode.
func (v *Value) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		*v = IntegerValue(i)
		return nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("value %q is neither integer, string nor decimal: %w", text, err)
	}
	*v = DecimalValue(d)
	return nil
}

// MarshalJSON renders the value back in the shape it was decoded from, so a
// decode/encode round trip is lossless. Decimal values keep their scale:
// a decoded 1.00 re-encodes as 1.00, not 1, which would re-decode as an
// integer and change the kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInteger:
		return []byte(strconv.FormatInt(v.Integer, 10)), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindDecimal:
		return []byte(formatDecimal(v.Decimal)), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.Kind)
}

// formatDecimal renders d at its own scale. Decimal.String trims trailing
// zeros, which would drop the fractional part of values like 1.00 entirely.
func formatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// Equal reports whether two values have the same kind and content. Decimal
// values compare numerically, not by representation.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInteger:
		return v.Integer == o.Integer
	case KindString:
		return v.Str == o.Str
	default:
		return v.Decimal.Equal(o.Decimal)
	}
}

// String renders the value for logs and debugging.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Integer, 10)
	case KindString:
		return v.Str
	default:
		return formatDecimal(v.Decimal)
	}
}
