package validator

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tr181kit/compare/node"
)

// coercionFunc converts a raw value into its canonical in-memory form for a
// data type, or reports why the value does not fit that type.
type coercionFunc func(value any) (any, error)

// coercionTable pins the data-type coercion matrix from the spec as data
// rather than a type-switch chain, so behavior is inspectable and testable
// independent of call sites.
var coercionTable = map[node.DataType]coercionFunc{
	node.DataTypeInt:          func(v any) (any, error) { return coerceSignedInt(v, 32) },
	node.DataTypeLong:         func(v any) (any, error) { return coerceSignedInt(v, 64) },
	node.DataTypeUnsignedInt:  func(v any) (any, error) { return coerceUnsignedInt(v, 32) },
	node.DataTypeUnsignedLong: func(v any) (any, error) { return coerceUnsignedInt(v, 64) },
	node.DataTypeBoolean:      coerceBool,
	node.DataTypeString:       coerceString,
	node.DataTypeDateTime:     coerceDateTime,
	node.DataTypeBase64:       coerceBase64,
	node.DataTypeHexBinary:    coerceHexBinary,
}

// CoerceValue converts value into its canonical representation for dt,
// returning an error describing why the value does not fit. Unknown or
// unset data types are treated as string.
func CoerceValue(dt node.DataType, value any) (any, error) {
	fn, ok := coercionTable[dt]
	if !ok {
		fn = coerceString
	}
	return fn(value)
}

var boolTokens = map[string]bool{
	"true": true, "1": true, "yes": true, "on": true,
	"false": false, "0": false, "no": false, "off": false,
}

func coerceBool(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, ok := boolTokens[strings.ToLower(strings.TrimSpace(t))]
		if !ok {
			return nil, fmt.Errorf("validator: %q is not a recognized boolean token", t)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("validator: %T is not coercible to boolean", v)
	}
}

func coerceString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(t), nil
	}
}

func coerceSignedInt(v any, bits int) (any, error) {
	i, err := toInt64(v)
	if err != nil {
		return nil, err
	}
	minVal := -(int64(1) << (bits - 1))
	maxVal := (int64(1) << (bits - 1)) - 1
	if i < minVal || i > maxVal {
		return nil, fmt.Errorf("validator: value %d overflows a signed %d-bit integer", i, bits)
	}
	return i, nil
}

func coerceUnsignedInt(v any, bits int) (any, error) {
	i, err := toInt64(v)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, fmt.Errorf("validator: value %d is negative, not valid for an unsigned type", i)
	}
	if bits < 64 {
		maxVal := (int64(1) << bits) - 1
		if i > maxVal {
			return nil, fmt.Errorf("validator: value %d overflows an unsigned %d-bit integer", i, bits)
		}
	}
	return uint64(i), nil
}

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float32:
		return truncatedInt(float64(t))
	case float64:
		return truncatedInt(t)
	case string:
		s := strings.TrimSpace(t)
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("validator: %q is not a valid integer: %w", t, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("validator: %T is not coercible to an integer", v)
	}
}

func truncatedInt(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("validator: %v has a fractional part, not valid for an integer type", f)
	}
	return int64(f), nil
}

// dateTimeLayouts are tried in order; all are ISO-8601 variants tolerating a
// trailing "Z" or a numeric UTC offset.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func coerceDateTime(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateTimeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return nil, fmt.Errorf("validator: %q is not a valid ISO-8601 dateTime", t)
	default:
		return nil, fmt.Errorf("validator: %T is not coercible to dateTime", v)
	}
}

func coerceBase64(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("validator: %T is not coercible to base64", v)
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		if _, err2 := base64.RawStdEncoding.DecodeString(s); err2 != nil {
			return nil, fmt.Errorf("validator: %q is not valid base64: %w", s, err)
		}
	}
	return s, nil
}

func coerceHexBinary(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("validator: %T is not coercible to hexBinary", v)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return nil, fmt.Errorf("validator: %q is not valid hexBinary: %w", s, err)
	}
	return s, nil
}
