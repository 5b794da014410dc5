package validator

import (
	"fmt"
	"regexp"

	"github.com/tr181kit/compare/node"
)

// ValidateRange checks coerced against vr. allowed_values, when set,
// short-circuits min/max: coerced must stringify to one of them. Otherwise
// min/max apply to numeric types and max_length/pattern apply to strings.
func ValidateRange(dt node.DataType, coerced any, vr *node.ValueRange) error {
	if vr.IsEmpty() {
		return nil
	}

	if len(vr.AllowedValues) > 0 {
		s := fmt.Sprint(coerced)
		for _, allowed := range vr.AllowedValues {
			if s == allowed {
				return nil
			}
		}
		return fmt.Errorf("validator: value %v is not one of the allowed values %v", coerced, vr.AllowedValues)
	}

	if dt.IsNumeric() || dt == node.DataTypeBoolean {
		f, ok := numericValue(coerced)
		if ok {
			if vr.Min != nil && f < *vr.Min {
				return fmt.Errorf("validator: value %v is below the minimum %v", coerced, *vr.Min)
			}
			if vr.Max != nil && f > *vr.Max {
				return fmt.Errorf("validator: value %v is above the maximum %v", coerced, *vr.Max)
			}
		}
	}

	if s, ok := coerced.(string); ok {
		if vr.MaxLength > 0 && len(s) > vr.MaxLength {
			return fmt.Errorf("validator: value %q exceeds max_length %d", s, vr.MaxLength)
		}
		if vr.Pattern != "" {
			// TR-181/XSD pattern semantics require a full match, not a
			// substring search, so the compiled pattern is anchored
			// regardless of whether the caller's pattern already is.
			re, err := regexp.Compile(`^(?:` + vr.Pattern + `)$`)
			if err != nil {
				return fmt.Errorf("validator: invalid pattern %q: %w", vr.Pattern, err)
			}
			if !re.MatchString(s) {
				return fmt.Errorf("validator: value %q does not match pattern %q", s, vr.Pattern)
			}
		}
	}

	return nil
}

func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
